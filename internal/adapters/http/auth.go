package httpadapter

import (
	"context"
	"net/http"
	"time"

	"rasbita/internal/api"
	"rasbita/internal/domain"
)

const sessionCookie = "sid"

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}

func (s *Server) newSessionCookie(token string, expires time.Time) *http.Cookie {
	c := &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		c.MaxAge = -1
		c.Expires = time.Time{}
	}
	return c
}

type loginResponse struct {
	user   domain.AdminUser
	cookie *http.Cookie
}

func (l loginResponse) VisitPostAdminLoginResponse(w http.ResponseWriter) error {
	http.SetCookie(w, l.cookie)
	writeJSON(w, http.StatusOK, l.user)
	return nil
}

type logoutResponse struct {
	cookie *http.Cookie
}

func (l logoutResponse) VisitPostAdminLogoutResponse(w http.ResponseWriter) error {
	http.SetCookie(w, l.cookie)
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (s *Server) PostAdminLogin(ctx context.Context, req api.PostAdminLoginRequestObject) (api.PostAdminLoginResponseObject, error) {
	if req.Body == nil || req.Body.Username == "" || req.Body.Password == "" {
		return nil, badRequest("username and password are required")
	}
	u, sess, err := s.auth.Login(ctx, req.Body.Username, req.Body.Password)
	if err != nil {
		return nil, err
	}
	return loginResponse{user: u, cookie: s.newSessionCookie(sess.Token, sess.ExpiresAt)}, nil
}

func (s *Server) PostAdminLogout(ctx context.Context, _ api.PostAdminLogoutRequestObject) (api.PostAdminLogoutResponseObject, error) {
	if err := s.auth.Logout(ctx, tokenFrom(ctx)); err != nil {
		return nil, err
	}
	return logoutResponse{cookie: s.newSessionCookie("", time.Time{})}, nil
}

func (s *Server) GetAdminMe(ctx context.Context, _ api.GetAdminMeRequestObject) (api.GetAdminMeResponseObject, error) {
	u, err := s.auth.Me(ctx, tokenFrom(ctx))
	if err != nil {
		return nil, err
	}
	return jsonResponse{http.StatusOK, u}, nil
}
