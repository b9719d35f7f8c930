package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"plantlog/entities"
	svc "plantlog/pkg/auth/service"
)

type AuthCtrl struct {
	svc    svc.AuthService
	secret []byte
}

func New(s svc.AuthService, jwtSecret string) *AuthCtrl {
	return &AuthCtrl{svc: s, secret: []byte(jwtSecret)}
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	id, err := h.svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrValidation):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, entities.ErrDuplicate):
			return c.JSON(http.StatusConflict, map[string]string{"error": "username or email already in use"})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusCreated, map[string]uint{"account_id": id})
}

func (h *AuthCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	a, err := h.svc.Authenticate(req.Username, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if a == nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid username or password"})
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": float64(a.AccountID),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "sign token"})
	}
	return c.JSON(http.StatusOK, map[string]any{"token": signed, "account": a})
}

func (h *AuthCtrl) WhoAmI(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"account_id": c.Get("account_id")})
}
