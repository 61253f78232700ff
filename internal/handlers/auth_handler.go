package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/config"
	"github.com/PetCareServices/petcare-api/internal/domain/perfil"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
	"github.com/PetCareServices/petcare-api/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: audit}
}

// --------- Requests ---------

type SetupRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Cargo string `json:"cargo"`

	EmailLogin string `json:"email_login" binding:"required,email"`
	Senha      string `json:"senha" binding:"required,min=6"`
}

type LoginRequest struct {
	EmailLogin string `json:"email_login" binding:"required,email"`
	Senha      string `json:"senha" binding:"required"`
}

// --------- Handlers ---------

// Setup cria o primeiro administrador. Só funciona numa base sem
// nenhum funcionário; depois disso a rota devolve erro e contas novas
// passam pelo CRUD protegido.
func (h *AuthHandler) Setup(c *gin.Context) {
	var req SetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var count int64
	if err := h.db.Model(&models.Funcionario{}).Count(&count).Error; err != nil {
		httperr.Internal(c, "setup_failed", "Erro ao verificar funcionários.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "setup_ja_realizado", "A conta inicial já foi criada.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.EmailLogin))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	f := models.Funcionario{
		Nome:       req.Nome,
		Cargo:      req.Cargo,
		Email:      email,
		EmailLogin: email,
		SenhaHash:  string(hashed),
		Perfil:     string(perfil.Admin),
		Ativo:      true,
	}

	if err := h.db.Create(&f).Error; err != nil {
		httperr.Internal(c, "setup_failed", "Erro ao criar funcionário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		FuncionarioID: &f.ID,
		Acao:          "setup_realizado",
		Entidade:      "funcionario",
		EntidadeID:    &f.ID,
	})

	token, err := h.generateToken(&f)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(201, gin.H{
		"funcionario": f,
		"token":       token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.EmailLogin))

	var f models.Funcionario
	if err := h.db.Where("email_login = ?", email).First(&f).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
			return
		}
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if !f.Ativo {
		httperr.Unauthorized(c, "funcionario_inativo", "Esta conta está desativada.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(f.SenhaHash), []byte(req.Senha)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")
		return
	}

	token, err := h.generateToken(&f)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(200, gin.H{
		"funcionario": f,
		"token":       token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(f *models.Funcionario) (string, error) {
	claims := jwt.MapClaims{
		"sub":    f.ID,
		"perfil": f.Perfil,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
		"iat":    time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
