package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func signIn(t *testing.T, app *fiber.App, body string) (int, map[string]string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	out := map[string]string{}
	json.NewDecoder(res.Body).Decode(&out)
	return res.StatusCode, out
}

func TestLoginWithPlaceholderPassword(t *testing.T) {
	app := fiber.New()
	NewHandler(Credentials{Username: "DEVAN23", Password: "sardam1234@"}, "test-secret").RegisterPublicRoutes(app)

	code, body := signIn(t, app, `{"username":"DEVAN23","password":"sardam1234@"}`)
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	if body["token"] == "" {
		t.Fatalf("expected a token in the response")
	}

	code, _ = signIn(t, app, `{"username":"DEVAN23","password":"wrong"}`)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", code)
	}

	code, _ = signIn(t, app, `{"username":"someone","password":"sardam1234@"}`)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong username, got %d", code)
	}
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	app := fiber.New()
	NewHandler(Credentials{Username: "owner", Hash: string(hash)}, "test-secret").RegisterPublicRoutes(app)

	code, _ := signIn(t, app, `{"username":"owner","password":"s3cret"}`)
	if code != 200 {
		t.Fatalf("expected 200 with hashed credential, got %d", code)
	}

	code, _ = signIn(t, app, `{"username":"owner","password":"nope"}`)
	if code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestHashWinsOverPlaceholder(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("real"), bcrypt.MinCost)
	creds := Credentials{Username: "owner", Password: "placeholder", Hash: string(hash)}

	if err := creds.Authenticate("owner", "placeholder"); err == nil {
		t.Fatalf("placeholder password must be ignored when a hash is set")
	}
	if err := creds.Authenticate("owner", "real"); err != nil {
		t.Fatalf("expected hashed password to authenticate: %v", err)
	}
}
