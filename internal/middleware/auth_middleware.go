package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "github.com/nuriddinovv/furniAsia/internal/auth/errors"
	"github.com/nuriddinovv/furniAsia/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get token
		tokenString, err := c.Cookie("access_token")
		if err != nil {
			response.Error(c, autherrors.ErrUnauthorized.HTTPStatus, autherrors.ErrUnauthorized.Code, autherrors.ErrUnauthorized.Message, nil)
			c.Abort()
			return
		}

		// 2. Parse & Validate
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		// 3. Extract Claims
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		// 4. Validate & Extract card_code (kode kartu loyalty pelanggan)
		cardCode, ok := claims["card_code"].(string)
		if !ok || cardCode == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Card code not found in token", nil)
			c.Abort()
			return
		}

		phone, _ := claims["phone"].(string)

		// 5. Set validated values
		c.Set("card_code_validated", cardCode)
		c.Set("phone", phone)

		c.Next()
	}
}
