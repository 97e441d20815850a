package bridge

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sapdoc/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConversationHeader carries the client's conversation key. Requests
// without it get a freshly minted session pair each time.
const ConversationHeader = "X-Conversation-Id"

// Forwarder relays inbound requests to the agent runtime verbatim: method,
// headers (minus Host), query parameters and body are preserved, and the
// upstream status, headers and content type pass through unchanged. Only a
// transport failure is replaced with a structured 500 JSON error body.
type Forwarder struct {
	agentURL *url.URL
	client   *http.Client
	sessions SessionStore
}

// NewForwarder builds a forwarder for the agent runtime at rawURL.
func NewForwarder(rawURL string, sessions SessionStore) (*Forwarder, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	return &Forwarder{
		agentURL: u,
		client:   &http.Client{Timeout: 60 * time.Second},
		sessions: sessions,
	}, nil
}

// Handler returns the gin handler forwarding to the agent runtime. The
// wildcard path parameter must be named "path".
func (f *Forwarder) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := utils.GetLogger()

		sess := f.ensureSession(c)

		target := *f.agentURL
		target.Path = joinPath(f.agentURL.Path, c.Param("path"))
		target.RawQuery = c.Request.URL.RawQuery

		req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, target.String(), c.Request.Body)
		if err != nil {
			logger.Error("bridge: failed to build upstream request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		for name, values := range c.Request.Header {
			if strings.EqualFold(name, "Host") {
				continue
			}
			for _, v := range values {
				req.Header.Add(name, v)
			}
		}
		req.Header.Set("X-User-Id", sess.UserID)
		req.Header.Set("X-Session-Id", sess.SessionID)

		resp, err := f.client.Do(req)
		if err != nil {
			logger.Error("bridge: agent runtime unreachable",
				zap.String("url", target.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer resp.Body.Close()

		for name, values := range resp.Header {
			for _, v := range values {
				c.Writer.Header().Add(name, v)
			}
		}
		c.Status(resp.StatusCode)
		if _, err := io.Copy(c.Writer, resp.Body); err != nil {
			logger.Warn("bridge: error streaming upstream response", zap.Error(err))
		}
	}
}

// ensureSession resolves the session pair for the request's conversation,
// minting and caching a new pair for a conversation seen for the first
// time. Cache trouble degrades to a one-off minted pair rather than
// failing the forward.
func (f *Forwarder) ensureSession(c *gin.Context) Session {
	logger := utils.GetLogger()

	conversationKey := c.GetHeader(ConversationHeader)
	if conversationKey == "" {
		return MintSession()
	}

	ctx := c.Request.Context()
	sess, err := f.sessions.Get(ctx, conversationKey)
	if err != nil {
		logger.Warn("bridge: session lookup failed",
			zap.String("conversation", conversationKey), zap.Error(err))
		return MintSession()
	}
	if sess != nil {
		return *sess
	}

	minted := MintSession()
	if err := f.sessions.Put(ctx, conversationKey, minted); err != nil {
		logger.Warn("bridge: failed to cache session",
			zap.String("conversation", conversationKey), zap.Error(err))
	}
	return minted
}

func joinPath(base, extra string) string {
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(extra, "/") {
		extra = "/" + extra
	}
	return base + extra
}
