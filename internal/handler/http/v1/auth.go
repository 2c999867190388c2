package v1

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/models"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
	"github.com/luyandaaaa/SafeVoice-sub000/pkg/token"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const ctxUserKey = "currentUser"

// JWTAuthMiddleware - middleware для аутентификации по bearer-токену.
// Проверяет подпись и срок токена, загружает пользователя и кладет его
// в контекст запроса без хеша пароля.
func JWTAuthMiddleware(tokens *token.Manager, authService service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			log.Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		userID, err := tokens.ParseAccessToken(raw)
		if err != nil {
			log.WithError(err).Warn("Invalid access token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		user, err := authService.UserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				log.Warn("Token references a missing user")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
			log.WithError(err).Error("Failed to load user for token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// RequireReviewer пускает дальше только пользователей с ролью ревьюера
func RequireReviewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || user.Role != models.RoleReviewer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied", "code": "FORBIDDEN"})
			return
		}
		c.Next()
	}
}

// bearerToken извлекает токен из Authorization: Bearer или X-Auth-Token.
// Второй заголовок поддерживается для старых клиентов.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.GetHeader("X-Auth-Token")
}

// currentUser возвращает пользователя, положенного в контекст middleware-ом
func currentUser(c *gin.Context) *models.User {
	val, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// ipRateLimiter раздает отдельный лимитер на каждый клиентский IP
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(limit rate.Limit, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (l *ipRateLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

// AuthRateLimitMiddleware ограничивает частоту запросов к эндпоинтам входа,
// защищая от перебора паролей. 5 запросов в минуту с одного IP.
func AuthRateLimitMiddleware(log *logrus.Logger) gin.HandlerFunc {
	limiter := newIPRateLimiter(rate.Limit(5.0/60.0), 5)
	return func(c *gin.Context) {
		if !limiter.limiter(c.ClientIP()).Allow() {
			log.WithField("client_ip", c.ClientIP()).Warn("Auth rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests", "code": "RATE_LIMITED"})
			return
		}
		c.Next()
	}
}
