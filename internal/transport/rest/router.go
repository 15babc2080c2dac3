package rest

import (
	"net/http"

	"github.com/heartmarshall/kitchentory-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	User       *UserHandler
	Household  *HouseholdHandler
	Invitation *InvitationHandler
	Shopping   *ShoppingHandler
	Pantry     *PantryHandler
	Realtime   *RealtimeHandler
}

// NewRouter registers all routes. authLimit wraps the credential endpoints;
// global middleware (auth, logging, CORS) is applied by the caller.
func NewRouter(h Handlers, authLimit middleware.Middleware) *http.ServeMux {
	if authLimit == nil {
		authLimit = func(next http.Handler) http.Handler { return next }
	}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/register", authLimit(http.HandlerFunc(h.Auth.Register)))
	mux.Handle("POST /auth/login", authLimit(http.HandlerFunc(h.Auth.Login)))
	mux.HandleFunc("GET /auth/me", h.Auth.Me)
	mux.HandleFunc("PATCH /auth/me", h.User.UpdateProfile)

	mux.Handle("GET /admin/users", middleware.AdminOnly(http.HandlerFunc(h.User.List)))
	mux.Handle("GET /admin/users/{id}", middleware.AdminOnly(http.HandlerFunc(h.User.Get)))
	mux.Handle("PATCH /admin/users/{id}/role", middleware.AdminOnly(http.HandlerFunc(h.User.SetRole)))

	mux.HandleFunc("POST /households", h.Household.Create)
	mux.HandleFunc("GET /households", h.Household.List)
	mux.HandleFunc("GET /households/{id}", h.Household.Get)
	mux.HandleFunc("PATCH /households/{id}", h.Household.Update)
	mux.HandleFunc("DELETE /households/{id}", h.Household.Delete)
	mux.HandleFunc("GET /households/{id}/activity", h.Household.Activity)
	mux.HandleFunc("GET /households/{id}/members", h.Household.ListMembers)
	mux.HandleFunc("POST /households/{id}/members", h.Household.AddMember)
	mux.HandleFunc("DELETE /households/{id}/members/{userID}", h.Household.RemoveMember)
	mux.HandleFunc("PATCH /households/{id}/members/{userID}/role", h.Household.UpdateMemberRole)
	mux.HandleFunc("PATCH /households/{id}/members/{userID}/permissions", h.Household.UpdateMemberPermissions)

	mux.HandleFunc("POST /households/{id}/invitations", h.Invitation.Create)
	mux.HandleFunc("GET /households/{id}/invitations", h.Invitation.List)
	mux.HandleFunc("DELETE /invitations/{id}", h.Invitation.Cancel)
	mux.Handle("GET /invitations/{token}", authLimit(http.HandlerFunc(h.Invitation.Get)))
	mux.Handle("POST /invitations/{token}/accept", authLimit(http.HandlerFunc(h.Invitation.Accept)))
	mux.Handle("POST /invitations/{token}/decline", authLimit(http.HandlerFunc(h.Invitation.Decline)))
	mux.Handle("POST /admin/invitations/cleanup", middleware.AdminOnly(http.HandlerFunc(h.Invitation.Cleanup)))

	mux.HandleFunc("POST /households/{id}/lists", h.Shopping.CreateList)
	mux.HandleFunc("GET /households/{id}/lists", h.Shopping.ListLists)
	mux.HandleFunc("GET /lists/{id}", h.Shopping.GetList)
	mux.HandleFunc("PATCH /lists/{id}", h.Shopping.UpdateList)
	mux.HandleFunc("DELETE /lists/{id}", h.Shopping.DeleteList)
	mux.HandleFunc("POST /lists/{id}/items", h.Shopping.AddItem)
	mux.HandleFunc("POST /lists/{id}/clear-purchased", h.Shopping.ClearPurchased)
	mux.HandleFunc("PATCH /items/{id}", h.Shopping.UpdateItem)
	mux.HandleFunc("DELETE /items/{id}", h.Shopping.DeleteItem)

	mux.HandleFunc("GET /households/{id}/pantry", h.Pantry.List)
	mux.HandleFunc("POST /households/{id}/pantry", h.Pantry.Add)
	mux.HandleFunc("GET /households/{id}/pantry/alerts", h.Pantry.Alerts)
	mux.HandleFunc("POST /households/{id}/pantry/restock", h.Pantry.Restock)
	mux.HandleFunc("PATCH /pantry/{id}", h.Pantry.Update)
	mux.HandleFunc("DELETE /pantry/{id}", h.Pantry.Delete)

	mux.HandleFunc("GET /households/{id}/ws", h.Realtime.Subscribe)

	return mux
}
