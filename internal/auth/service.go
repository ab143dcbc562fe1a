// Package auth simulates sign-in, registration and account management.
// Any non-empty credentials are accepted; outcomes are reported through
// notifications after a fixed latency.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/notify"
)

const (
	DefaultLatency       = 1500 * time.Millisecond
	DefaultDeleteLatency = 2000 * time.Millisecond

	// DeleteConfirmation must be typed verbatim to delete the account.
	DeleteConfirmation = "حذف حسابي"
)

const (
	msgVerifying        = "جارِ التحقق من البيانات..."
	msgLoggedIn         = "تم تسجيل الدخول بنجاح!"
	msgMissingLogin     = "الرجاء إدخال البريد الإلكتروني وكلمة المرور"
	msgRegistering      = "جارِ إنشاء الحساب..."
	msgMissingFields    = "الرجاء ملء جميع الحقول"
	msgPasswordMismatch = "كلمتا المرور غير متطابقتين"
	msgRegistered       = "تم التسجيل بنجاح. الرجاء تسجيل الدخول."
	msgNewMismatch      = "كلمتا المرور الجديدتان غير متطابقتين"
	msgPasswordChanged  = "تم تغيير كلمة المرور بنجاح"
	msgProfileUpdated   = "تم تحديث الملف الشخصي بنجاح"
	msgAccountDeleted   = "تم حذف الحساب بنجاح"
)

type Config struct {
	Latency       time.Duration
	DeleteLatency time.Duration
	Secret        string
}

type Service struct {
	notifier      notify.Notifier
	latency       time.Duration
	deleteLatency time.Duration
	secret        []byte
}

func NewService(notifier notify.Notifier, cfg Config) *Service {
	return &Service{
		notifier:      notifier,
		latency:       cfg.Latency,
		deleteLatency: cfg.DeleteLatency,
		secret:        []byte(cfg.Secret),
	}
}

// Login checks that both credentials are present and issues a session.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	s.notifier.Push(msgVerifying, notify.KindInfo)

	return form.Delay(s.latency, func() (Session, error) {
		if missing := blank(map[string]string{"email": email, "password": password}); len(missing) > 0 {
			s.notifier.Push(msgMissingLogin, notify.KindError)
			return Session{}, &form.ValidationError{Fields: missing, Reason: "required"}
		}

		session, err := s.issue(strings.TrimSpace(email))
		if err != nil {
			return Session{}, err
		}

		s.notifier.Push(msgLoggedIn, notify.KindSuccess)

		return session, nil
	}).Wait(ctx)
}

type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func (s *Service) Register(ctx context.Context, reg Registration) error {
	s.notifier.Push(msgRegistering, notify.KindInfo)

	_, err := form.Delay(s.latency, func() (struct{}, error) {
		missing := blank(map[string]string{
			"name":            reg.Name,
			"email":           reg.Email,
			"password":        reg.Password,
			"confirmPassword": reg.ConfirmPassword,
		})
		if len(missing) > 0 {
			s.notifier.Push(msgMissingFields, notify.KindError)
			return struct{}{}, &form.ValidationError{Fields: missing, Reason: "required"}
		}

		if reg.Password != reg.ConfirmPassword {
			s.notifier.Push(msgPasswordMismatch, notify.KindError)
			return struct{}{}, &form.ValidationError{Fields: []string{"confirmPassword"}, Reason: "passwords do not match"}
		}

		s.notifier.Push(msgRegistered, notify.KindSuccess)

		return struct{}{}, nil
	}).Wait(ctx)

	return err
}

// ChangePassword rejects a mismatched confirmation immediately.
func (s *Service) ChangePassword(ctx context.Context, current, next, confirm string) error {
	if next != confirm {
		s.notifier.Push(msgNewMismatch, notify.KindError)
		return &form.ValidationError{Fields: []string{"confirmation"}, Reason: "passwords do not match"}
	}

	_, err := form.Delay(s.latency, func() (struct{}, error) {
		s.notifier.Push(msgPasswordChanged, notify.KindSuccess)
		return struct{}{}, nil
	}).Wait(ctx)

	return err
}

func (s *Service) UpdateProfile(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return &form.ValidationError{Fields: []string{"name"}, Reason: "required"}
	}

	_, err := form.Delay(s.latency, func() (struct{}, error) {
		s.notifier.Push(msgProfileUpdated, notify.KindSuccess)
		return struct{}{}, nil
	}).Wait(ctx)

	return err
}

// DeleteAccount does nothing unless confirmation matches DeleteConfirmation.
func (s *Service) DeleteAccount(ctx context.Context, confirmation string) error {
	if confirmation != DeleteConfirmation {
		return &form.ValidationError{Fields: []string{"confirmation"}, Reason: "confirmation text does not match"}
	}

	_, err := form.Delay(s.deleteLatency, func() (struct{}, error) {
		s.notifier.Push(msgAccountDeleted, notify.KindInfo)
		return struct{}{}, nil
	}).Wait(ctx)

	return err
}

// blank lists the keys with empty values, in a stable order.
func blank(values map[string]string) []string {
	order := []string{"name", "email", "password", "confirmPassword"}

	var missing []string

	for _, k := range order {
		if v, ok := values[k]; ok && strings.TrimSpace(v) == "" {
			missing = append(missing, k)
		}
	}

	return missing
}
