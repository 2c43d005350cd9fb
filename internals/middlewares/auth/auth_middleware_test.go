package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"akademiku_backend/internals/configs"
	helper "akademiku_backend/internals/helpers"
)

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestAuthMiddlewarePopulatesLocals(t *testing.T) {
	configs.JWTSecret = "test-secret"

	token := signTestToken(t, configs.JWTSecret, jwt.MapClaims{
		"user_id": "2f9d6a52-1f0f-4f3a-9a8f-0c6d3d9b2e11",
		"role":    "teacher",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotUserID, gotRole, gotRaw string
	app := fiber.New()
	app.Get("/whoami", AuthMiddleware(), func(c *fiber.Ctx) error {
		gotUserID, _ = c.Locals("user_id").(string)
		gotRole = helper.GetRoleFromLocals(c)
		gotRaw, _ = c.Locals(helper.LocRawToken).(string)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if gotUserID != "2f9d6a52-1f0f-4f3a-9a8f-0c6d3d9b2e11" {
		t.Errorf("user_id local = %q", gotUserID)
	}
	if gotRole != "teacher" {
		t.Errorf("role local = %q", gotRole)
	}
	if gotRaw != token {
		t.Errorf("raw token local not stored for downstream handlers")
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Get("/guarded", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	configs.JWTSecret = "test-secret"

	token := signTestToken(t, configs.JWTSecret, jwt.MapClaims{
		"user_id": "2f9d6a52-1f0f-4f3a-9a8f-0c6d3d9b2e11",
		"role":    "teacher",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	app := fiber.New()
	app.Get("/guarded", AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
