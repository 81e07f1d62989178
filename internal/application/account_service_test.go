package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dimasprs/skycast-api/pkg/helpers"
)

func newTestAccountService() *AccountService {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	// Low bcrypt cost to keep tests fast.
	return NewAccountService(newMemRepo(), jwt, nil, 4)
}

func TestRegister_IssuesVerifiableToken(t *testing.T) {
	t.Parallel()
	svc := newTestAccountService()
	ctx := context.Background()

	u, token, err := svc.Register(ctx, "Ann", "Ann@X.com ", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if u.ID == "" {
		t.Fatal("expected assigned user id")
	}
	if u.Email != "ann@x.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.Password == "secret1" {
		t.Fatal("plaintext password stored")
	}

	subject, err := svc.JWT.Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if subject != u.ID {
		t.Fatalf("token subject mismatch: got %q want %q", subject, u.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := newTestAccountService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	// Case and whitespace variations collide with the stored address.
	_, _, err := svc.Register(ctx, "Ann Again", "ANN@x.com", "secret2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()
	svc := newTestAccountService()
	ctx := context.Background()

	if _, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ann@x.com", "wrong-password"},
		{"unknown email", "nobody@x.com", "secret1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	svc := newTestAccountService()
	ctx := context.Background()

	reg, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	u, token, err := svc.Login(ctx, "ANN@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.ID != reg.ID {
		t.Fatalf("user mismatch: got %q want %q", u.ID, reg.ID)
	}
	if subject, err := svc.JWT.Verify(token); err != nil || subject != u.ID {
		t.Fatalf("token verify: subject=%q err=%v", subject, err)
	}
}

func TestAddSearch_CapsHistoryAtThree(t *testing.T) {
	t.Parallel()
	svc := newTestAccountService()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	var history []string
	for _, city := range []string{"A", "B", "C", "D"} {
		entries, err := svc.AddSearch(ctx, u.ID, city)
		if err != nil {
			t.Fatalf("AddSearch(%q) error: %v", city, err)
		}
		history = history[:0]
		for _, e := range entries {
			history = append(history, e.City)
		}
	}

	want := []string{"D", "C", "B"}
	if len(history) != len(want) {
		t.Fatalf("history length: got %d want %d (%v)", len(history), len(want), history)
	}
	for i := range want {
		if history[i] != want[i] {
			t.Fatalf("history[%d]: got %q want %q", i, history[i], want[i])
		}
	}
}

func TestAddSearch_Validation(t *testing.T) {
	t.Parallel()
	svc := newTestAccountService()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if _, err := svc.AddSearch(ctx, u.ID, "  "); !errors.Is(err, ErrEmptyCity) {
		t.Fatalf("expected ErrEmptyCity, got %v", err)
	}
	if _, err := svc.AddSearch(ctx, "missing-user", "Paris"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStoreFailuresAreNotMaskedAsAuthErrors(t *testing.T) {
	t.Parallel()

	errStore := errors.New("connection refused")
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	svc := NewAccountService(&brokenRepo{err: errStore}, jwt, nil, 4)
	ctx := context.Background()

	// A store outage must propagate, not read as a credential or lookup
	// failure the client could act on.
	if _, _, err := svc.Login(ctx, "ann@x.com", "secret1"); !errors.Is(err, errStore) {
		t.Fatalf("Login: expected store error to propagate, got %v", err)
	}
	if _, err := svc.GetProfile(ctx, "user-1"); !errors.Is(err, errStore) {
		t.Fatalf("GetProfile: expected store error to propagate, got %v", err)
	}
	if _, err := svc.AddSearch(ctx, "user-1", "Paris"); !errors.Is(err, errStore) {
		t.Fatalf("AddSearch: expected store error to propagate, got %v", err)
	}
	if _, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1"); !errors.Is(err, errStore) {
		t.Fatalf("Register: expected store error to propagate, got %v", err)
	}
}

func TestDeleteAccount_Idempotent(t *testing.T) {
	t.Parallel()
	svc := newTestAccountService()
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Ann", "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if err := svc.DeleteAccount(ctx, u.ID); err != nil {
		t.Fatalf("DeleteAccount error: %v", err)
	}
	// Second delete of the same id, and a delete of a never-existing id,
	// both succeed.
	if err := svc.DeleteAccount(ctx, u.ID); err != nil {
		t.Fatalf("repeat DeleteAccount error: %v", err)
	}
	if err := svc.DeleteAccount(ctx, "never-existed"); err != nil {
		t.Fatalf("DeleteAccount on unknown id error: %v", err)
	}

	if _, err := svc.GetProfile(ctx, u.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
