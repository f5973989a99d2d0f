package middleware

import (
	"flashcards/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware rejects card actions from users who have not sent the password
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			if !authService.IsAuthorized(userID) {
				logger.Debug("Rejected unauthorized user", zap.Int64("user_id", userID))
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{
						Text:      "Send /start and the password first.",
						ShowAlert: true,
					})
				}
				return c.Send("Send /start and the password first.")
			}

			return next(c)
		}
	}
}
