package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/inkwellhq/inkwell/internal/userservice"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthCheckHandler)

	// user service
	router.HandlerFunc(http.MethodPost, "/v1/users/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/users/activate", app.activateUserHandler)
	router.HandlerFunc(http.MethodPost, "/v1/users/login", app.loginUserHandler)
	router.HandlerFunc(http.MethodPost, "/v1/users/logout", app.requireAuthUser(app.logoutUserHandler))
	router.HandlerFunc(http.MethodGet, "/v1/users/liked-posts", app.requireAuthUser(app.likedPostsHandler))

	// post service. GET /v1/posts dispatches on the q and author query
	// parameters, so search and author listings share the collection URL.
	router.HandlerFunc(http.MethodGet, "/v1/posts", app.listPostsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts", app.requirePermission(app.createPostHandler, userservice.PermissionWritePost))
	router.HandlerFunc(http.MethodGet, "/v1/posts/:id", app.getPostHandler)
	router.HandlerFunc(http.MethodPatch, "/v1/posts/:id", app.requirePermission(app.updatePostHandler, userservice.PermissionWritePost))
	router.HandlerFunc(http.MethodDelete, "/v1/posts/:id", app.requirePermission(app.deletePostHandler, userservice.PermissionWritePost))

	router.HandlerFunc(http.MethodGet, "/v1/posts/:id/comments", app.listCommentsHandler)
	router.HandlerFunc(http.MethodPost, "/v1/posts/:id/comments", app.requireAuthUser(app.createCommentHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/comments/:id", app.requireAuthUser(app.deleteCommentHandler))

	router.HandlerFunc(http.MethodPost, "/v1/posts/:id/like", app.requireAuthUser(app.toggleLikeHandler))
	router.HandlerFunc(http.MethodGet, "/v1/posts/:id/like", app.likeStatusHandler)

	return app.recoverPanic(app.enableCORS(app.logRequest(app.authenticate(router))))
}
