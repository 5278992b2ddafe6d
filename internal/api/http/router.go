package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups everything the router mounts. Files is nil when the MinIO
// backend serves downloads directly.
type Handlers struct {
	Auth          *AuthHandler
	Access        *AccessHandler
	Thesis        *ThesisHandler
	Notifications *NotificationHandler
	Admin         *AdminHandler
	Bookshelves   *BookshelfHandler
	Files         *FilesHandler
}

func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Public routes.
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	if h.Files != nil {
		api.HandleFunc("/files/download", h.Files.Download).Methods(http.MethodGet)
	}

	// Authenticated routes.
	authed := api.NewRoute().Subrouter()
	authed.Use(auth.Require)

	authed.HandleFunc("/theses", h.Thesis.List).Methods(http.MethodGet)
	authed.HandleFunc("/theses/{id:[0-9]+}", h.Thesis.Get).Methods(http.MethodGet)
	authed.HandleFunc("/theses/{id:[0-9]+}/download-url", h.Thesis.DownloadURL).Methods(http.MethodGet)

	authed.HandleFunc("/access-requests", h.Access.Submit).Methods(http.MethodPost)
	authed.HandleFunc("/access-requests/mine", h.Access.ListMine).Methods(http.MethodGet)

	authed.HandleFunc("/notifications", h.Notifications.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/unread-count", h.Notifications.UnreadCount).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notifications.MarkAsRead).Methods(http.MethodPost)
	authed.HandleFunc("/notifications/read-all", h.Notifications.MarkAllAsRead).Methods(http.MethodPost)
	authed.HandleFunc("/notifications", h.Notifications.DeleteAll).Methods(http.MethodDelete)

	// Admin routes.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireAdmin)

	admin.HandleFunc("/dashboard", h.Admin.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/access-requests", h.Admin.ListAccessRequests).Methods(http.MethodGet)
	admin.HandleFunc("/access-requests/pending", h.Admin.ListPendingRequests).Methods(http.MethodGet)
	admin.HandleFunc("/access-requests/{id:[0-9]+}/approve", h.Access.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/access-requests/{id:[0-9]+}/reject", h.Access.Reject).Methods(http.MethodPost)
	admin.HandleFunc("/access-requests/{id:[0-9]+}/remove", h.Access.Remove).Methods(http.MethodPost)

	admin.HandleFunc("/theses", h.Thesis.Upload).Methods(http.MethodPost)
	admin.HandleFunc("/theses/{id:[0-9]+}", h.Thesis.Update).Methods(http.MethodPut)
	admin.HandleFunc("/theses/{id:[0-9]+}", h.Thesis.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/theses/{id:[0-9]+}/qrcode", h.Thesis.AttachQRCode).Methods(http.MethodPost)

	admin.HandleFunc("/bookshelves", h.Bookshelves.Create).Methods(http.MethodPost)
	admin.HandleFunc("/bookshelves", h.Bookshelves.List).Methods(http.MethodGet)
	admin.HandleFunc("/bookshelves/{id:[0-9]+}", h.Bookshelves.Get).Methods(http.MethodGet)
	admin.HandleFunc("/bookshelves/{id:[0-9]+}", h.Bookshelves.Update).Methods(http.MethodPut)
	admin.HandleFunc("/bookshelves/{id:[0-9]+}", h.Bookshelves.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/bookshelves/{id:[0-9]+}/slots", h.Bookshelves.AssignThesis).Methods(http.MethodPost)
	admin.HandleFunc("/bookshelves/{id:[0-9]+}/slots", h.Bookshelves.ListSlots).Methods(http.MethodGet)
	admin.HandleFunc("/bookshelves/slots/{slotId:[0-9]+}", h.Bookshelves.RemoveSlot).Methods(http.MethodDelete)

	return r
}
