package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stefanreuther/c2ng-sub017/cache"
	"github.com/stefanreuther/c2ng-sub017/linkresolver"
	"github.com/stefanreuther/c2ng-sub017/render"
)

type RenderRequest struct {
	Text           string `json:"text" binding:"required"`
	Format         string `json:"format" binding:"required,renderformat"`
	BaseURL        string `json:"base_url" binding:"omitempty,max=200"`
	QuoteMessageID int64  `json:"quote_message_id" binding:"omitempty,gte=0"`
	QuoteAuthor    string `json:"quote_author" binding:"omitempty,max=100"`
}

type RenderResponse struct {
	Output string `json:"output"`
}

func (service *Service) renderText(ctx *gin.Context) {
	var req RenderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	userID := extractUserIDFromCtx(ctx)

	baseURL := req.BaseURL
	if baseURL == "" {
		baseURL = service.config.RenderBaseURL
	}

	cacheFormat, force, cacheable := renderCacheFormat(req.Format)
	cacheable = cacheable && service.cache != nil

	key := cache.Key{
		Stored:         req.Text,
		Format:         cacheFormat,
		BaseURL:        baseURL,
		UserID:         userID,
		QuoteMessageID: req.QuoteMessageID,
		QuoteAuthor:    req.QuoteAuthor,
	}.Hash()

	// 1. Serve from the cache unless the caller forces a fresh render
	if cacheable && !force {
		entry, err := service.cache.GetRendered(ctx, key)
		if err == nil {
			ctx.JSON(http.StatusOK, RenderResponse{Output: entry.Output})
			return
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn().Err(err).Msg("render cache lookup failed")
		}
	}

	// 2. Render with links resolved on behalf of the acting user
	quoteAuthor := req.QuoteAuthor
	if quoteAuthor == "" && req.QuoteMessageID != 0 && quotes(req.Format) {
		quoteAuthor = service.messageAuthor(ctx, req.QuoteMessageID)
	}

	resolver := linkresolver.New(ctx, service.store, userID, service.config.MessageIDDomain)
	output := render.Render(req.Text, &render.Context{
		Links:          resolver,
		News:           resolver,
		Highlighter:    service.highlighter,
		UserID:         userID,
		QuoteMessageID: req.QuoteMessageID,
		QuoteAuthor:    quoteAuthor,
	}, render.Options{
		BaseURL: baseURL,
		Format:  req.Format,
	})

	// 3. Refresh the cache; a stale entry must not survive a failed forced refresh
	if cacheable {
		entry := cache.RenderedEntry{
			Output:     output,
			Format:     cacheFormat,
			RenderedAt: time.Now(),
		}
		if err := service.cache.SaveRendered(ctx, key, entry, service.config.RenderCacheTTL); err != nil {
			log.Warn().Err(err).Msg("render cache update failed")
			if force {
				if err := service.cache.DeleteRendered(ctx, key); err != nil {
					log.Warn().Err(err).Msg("cannot drop stale render cache entry")
				}
			}
		}
	}

	ctx.JSON(http.StatusOK, RenderResponse{Output: output})
}

// renderCacheFormat returns the format identifying a cache entry, which is
// the requested format without "force:". Formats that bypass the parser are not cached.
func renderCacheFormat(format string) (cacheFormat string, force bool, cacheable bool) {
	f, ok := render.ParseFormat(format)
	if !ok {
		return format, false, false
	}

	var b strings.Builder
	for _, t := range f.Transforms {
		if t == render.PrefixForce {
			force = true
			continue
		}
		b.WriteString(t)
	}
	b.WriteString(f.Target)

	return b.String(), force, true
}

func quotes(format string) bool {
	f, ok := render.ParseFormat(format)
	return ok && f.Has(render.PrefixQuote)
}

// messageAuthor returns the login of a message's author, or "" if the message
// or its author is not visible. The attribution then stays empty.
func (service *Service) messageAuthor(ctx context.Context, messageID int64) string {
	msg, err := service.store.GetMessage(ctx, messageID)
	if err != nil {
		log.Debug().Err(err).Int64("message_id", messageID).Msg("quoted message not found")
		return ""
	}
	user, err := service.store.GetUserByID(ctx, msg.AuthorID)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", msg.AuthorID).Msg("quoted author not found")
		return ""
	}
	return user.Login
}
