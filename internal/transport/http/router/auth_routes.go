package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lodging-api/internal/core/auth"
	"go-lodging-api/internal/domain"
	"go-lodging-api/internal/identity"
	mdw "go-lodging-api/internal/transport/http/middleware"
)

// AuthDeps 认证相关接口的依赖
type AuthDeps struct {
	Registration *identity.RegistrationService
	Verification *identity.VerificationService
	Auth         *identity.Authenticator
	Notifier     *identity.SignupNotifier
	Accounts     domain.AccountRepository
	JWTer        *auth.JWTer
}

type accountOut struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Furigana    string `json:"furigana"`
	PostalCode  string `json:"postalCode"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	Enabled     bool   `json:"enabled"`
}

func toAccountOut(a *domain.Account) accountOut {
	return accountOut{
		ID: a.ID, Email: a.Email, Name: a.Name,
		Furigana: a.Furigana, PostalCode: a.PostalCode,
		Address: a.Address, PhoneNumber: a.PhoneNumber,
		Role: a.RoleName().String(), Enabled: a.Enabled,
	}
}

// mountAuthRoutes 公共组挂 signup/verify/login，鉴权组挂 /me
func mountAuthRoutes(public, authed *gin.RouterGroup, d AuthDeps) {
	ezPublic := New(public)
	ezAuthed := New(authed)

	// --- POST /auth/signup ---
	type signupIn struct {
		Email                string `json:"email" binding:"required,email"`
		Password             string `json:"password" binding:"required,min=8"`
		PasswordConfirmation string `json:"passwordConfirmation" binding:"required"`
		Name                 string `json:"name" binding:"required,max=64"`
		Furigana             string `json:"furigana" binding:"omitempty,max=64"`
		PostalCode           string `json:"postalCode" binding:"omitempty,max=16"`
		Address              string `json:"address" binding:"omitempty,max=255"`
		PhoneNumber          string `json:"phoneNumber" binding:"omitempty,max=32"`
	}
	type signupOut struct {
		Account accountOut `json:"account"`
		Message string     `json:"message"`
	}
	RegisterAction(ezPublic, Action[signupIn, signupOut]{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Binder: BindJSON,
		Handler: func(c *gin.Context, in *signupIn) (signupOut, error) {
			a, err := d.Registration.Register(c.Request.Context(), identity.RegisterInput{
				Email:                in.Email,
				Password:             in.Password,
				PasswordConfirmation: in.PasswordConfirmation,
				Name:                 in.Name,
				Furigana:             in.Furigana,
				PostalCode:           in.PostalCode,
				Address:              in.Address,
				PhoneNumber:          in.PhoneNumber,
			})
			if err != nil {
				return signupOut{}, err
			}
			// 账号已落库，之后的令牌+邮件走异步旁路，不阻塞响应
			d.Notifier.Enqueue(a, requestBaseURL(c)+"/api/v1/auth")
			return signupOut{
				Account: toAccountOut(a),
				Message: "verification mail sent",
			}, nil
		},
	})

	// --- GET /auth/verify?token=T ---
	type verifyIn struct {
		Token string `form:"token" binding:"required"`
	}
	RegisterAction(ezPublic, Action[verifyIn, accountOut]{
		Method: http.MethodGet,
		Path:   "/auth/verify",
		Binder: BindQuery,
		Handler: func(c *gin.Context, in *verifyIn) (accountOut, error) {
			a, err := d.Verification.Verify(c.Request.Context(), in.Token)
			if err != nil {
				return accountOut{}, err
			}
			return toAccountOut(a), nil
		},
	})

	// --- POST /auth/login ---
	type loginIn struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	type loginOut struct {
		Token   string     `json:"token"`
		Account accountOut `json:"account"`
	}
	RegisterAction(ezPublic, Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			a, err := d.Auth.Authenticate(c.Request.Context(), in.Email, in.Password)
			if err != nil {
				return loginOut{}, err
			}
			tok, err := d.JWTer.Issue(a.ID, a.RoleName().String())
			if err != nil || tok == "" {
				return loginOut{}, Internal("issue token failed", err)
			}
			return loginOut{Token: tok, Account: toAccountOut(a)}, nil
		},
	})

	// --- GET /me ---
	RegisterAction(ezAuthed, Action[struct{}, accountOut]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (accountOut, error) {
			a, err := d.Accounts.FindByID(c.Request.Context(), c.GetString(mdw.CtxAccountID))
			if err != nil {
				return accountOut{}, err
			}
			return toAccountOut(a), nil
		},
	})

	// --- PUT /me 资料编辑；不碰 enabled/role ---
	type profileIn struct {
		Email       string `json:"email" binding:"required,email"`
		Name        string `json:"name" binding:"required,max=64"`
		Furigana    string `json:"furigana" binding:"omitempty,max=64"`
		PostalCode  string `json:"postalCode" binding:"omitempty,max=16"`
		Address     string `json:"address" binding:"omitempty,max=255"`
		PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=32"`
	}
	RegisterAction(ezAuthed, Action[profileIn, accountOut]{
		Method: http.MethodPut,
		Path:   "/me",
		Binder: BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *profileIn) (accountOut, error) {
			uid := c.GetString(mdw.CtxAccountID)
			err := d.Accounts.UpdateProfile(c.Request.Context(), uid, domain.AccountProfile{
				Email:       identity.NormalizeEmail(in.Email),
				Name:        in.Name,
				Furigana:    in.Furigana,
				PostalCode:  in.PostalCode,
				Address:     in.Address,
				PhoneNumber: in.PhoneNumber,
			})
			if err != nil {
				return accountOut{}, err
			}
			a, err := d.Accounts.FindByID(c.Request.Context(), uid)
			if err != nil {
				return accountOut{}, err
			}
			return toAccountOut(a), nil
		},
	})
}

// requestBaseURL 从请求上下文取验证链接的 base（scheme://host）
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
