package blogHandler

import (
	"blogapi/internal/api/blog"
	contextPkg "blogapi/pkg/context"
	"blogapi/pkg/handlerUtil"
	"blogapi/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogsHandler) LikeBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	blogID, userID := ctx.Params("id"), ctx.Query("userId")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"user_id":    userID,
	}).Debug("Processing like blog request")

	if err := h.validateLikeParams(blogID, userID); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	blog, err := h.blogsService.LikeBlog(c, blogID, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "like_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogResponse(blog))
	}
}

func (h *BlogsHandler) UnlikeBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	blogID, userID := ctx.Params("id"), ctx.Query("userId")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"user_id":    userID,
	}).Debug("Processing unlike blog request")

	if err := h.validateLikeParams(blogID, userID); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	blog, err := h.blogsService.UnlikeBlog(c, blogID, userID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "unlike_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogResponse(blog))
	}
}

func (h *BlogsHandler) validateLikeParams(blogID, userID string) error {
	if err := h.validator.Var(blogID, "required,uuid"); err != nil {
		return err
	}
	return h.validator.Var(userID, "required,uuid")
}
