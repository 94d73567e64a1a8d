package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/photinia-ana/kalkman-web/internal/backend"
	"github.com/photinia-ana/kalkman-web/internal/middleware"
	"github.com/photinia-ana/kalkman-web/internal/view"
)

// Pages renders the five dashboard screens. Each handler fetches fresh data
// through the backend client, composes a view model and renders its
// template; backend failures surface as error or empty states in the page,
// never as a crash. Handlers hold no per-request state, so a response can
// only ever carry the data fetched for its own query.
type Pages struct {
	api *backend.Client
}

func NewPages(api *backend.Client) *Pages {
	return &Pages{api: api}
}

// Dashboard handles GET /dashboard
func (h *Pages) Dashboard(c fiber.Ctx) error {
	v := view.BuildDashboard(c.Context(), h.api)
	return c.Render("dashboard", fiber.Map{
		"Title":     "Overview",
		"ActiveNav": "dashboard",
		"View":      v,
	}, "layouts/main")
}

// UserList handles GET /users?search=
func (h *Pages) UserList(c fiber.Ctx) error {
	search := middleware.ValidateSearchTerm(fiber.Query[string](c, "search"))

	v := view.BuildUserList(c.Context(), h.api, search)
	return c.Render("users", fiber.Map{
		"Title":     "Users",
		"ActiveNav": "users",
		"View":      v,
	}, "layouts/main")
}

// Profile handles GET /profile/:userId
func (h *Pages) Profile(c fiber.Ctx) error {
	userID, errMsg := middleware.ValidateUserID(c.Params("userId"))

	var v *view.ProfileView
	if errMsg != "" {
		// A malformed ID can't match any profile; show the not-found state.
		v = &view.ProfileView{UserID: c.Params("userId"), NotFound: true}
	} else {
		v = view.BuildProfile(c.Context(), h.api, userID)
	}

	if v.NotFound {
		c.Status(fiber.StatusNotFound)
	}
	return c.Render("profile", fiber.Map{
		"Title":     "User " + v.UserID,
		"ActiveNav": "users",
		"View":      v,
	}, "layouts/main")
}

// Compare handles GET /compare?user1=&user2=&submitted=
func (h *Pages) Compare(c fiber.Ctx) error {
	user1 := fiber.Query[string](c, "user1")
	user2 := fiber.Query[string](c, "user2")
	submitted := fiber.Query[string](c, "submitted") == "1"

	v := view.BuildCompare(c.Context(), h.api, user1, user2, submitted)
	return c.Render("compare", fiber.Map{
		"Title":     "Compare",
		"ActiveNav": "compare",
		"View":      v,
	}, "layouts/main")
}

// Videos handles GET /videos?userId=&mode=&category=&domain=
func (h *Pages) Videos(c fiber.Ctx) error {
	query := view.VideoLibraryQuery{
		Mode:     middleware.ValidateViewMode(fiber.Query[string](c, "mode")),
		Category: middleware.ValidateFilter(fiber.Query[string](c, "category")),
		Domain:   middleware.ValidateFilter(fiber.Query[string](c, "domain")),
	}
	if userID, errMsg := middleware.ValidateUserID(fiber.Query[string](c, "userId")); errMsg == "" {
		query.UserID = userID
	}

	v := view.BuildVideoLibrary(c.Context(), h.api, query)
	return c.Render("videos", fiber.Map{
		"Title":     "Video Library",
		"ActiveNav": "videos",
		"View":      v,
	}, "layouts/main")
}
