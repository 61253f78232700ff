package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/domain/perfil"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/models"
	"github.com/PetCareServices/petcare-api/internal/validators"
)

type FuncionarioHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewFuncionarioHandler(db *gorm.DB, audit *audit.Dispatcher) *FuncionarioHandler {
	return &FuncionarioHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateFuncionarioRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Cargo    string `json:"cargo"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`

	EmailLogin string `json:"email_login" binding:"required,email"`
	Senha      string `json:"senha" binding:"required,min=6"`
	Perfil     string `json:"perfil"`
}

type UpdateFuncionarioRequest struct {
	Nome     *string `json:"nome"`
	Cargo    *string `json:"cargo"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`

	EmailLogin *string `json:"email_login"`
	Senha      *string `json:"senha"`
	Perfil     *string `json:"perfil"`
	Ativo      *bool   `json:"ativo"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *FuncionarioHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Funcionario{})

	if c.Query("ativos") == "true" {
		q = q.Where("ativo = ?", true)
	}

	var funcionarios []models.Funcionario
	if err := q.Order("nome ASC").Find(&funcionarios).Error; err != nil {
		httperr.Internal(c, "failed_to_list_funcionarios", "Erro ao listar funcionários.")
		return
	}

	httpresp.List(c, funcionarios)
}

func (h *FuncionarioHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var f models.Funcionario
	if err := h.db.First(&f, id).Error; err != nil {
		httperr.NotFound(c, "funcionario_nao_encontrado", "Funcionário não encontrado.")
		return
	}

	httpresp.OK(c, f)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *FuncionarioHandler) Create(c *gin.Context) {
	var req CreateFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	p := perfil.Parse(req.Perfil)
	if req.Perfil == "" {
		p = perfil.Atendente
	}
	if !p.Valido() {
		httperr.BadRequest(c, "perfil_invalido", "Perfil inválido.")
		return
	}

	emailLogin := strings.ToLower(strings.TrimSpace(req.EmailLogin))
	if !validators.IsEmailDomainValid(emailLogin) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	h.db.Model(&models.Funcionario{}).Where("email_login = ?", emailLogin).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_login_ja_existe", "Já existe um funcionário com este e-mail de acesso.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	f := models.Funcionario{
		Nome:     strings.TrimSpace(req.Nome),
		Cargo:    strings.TrimSpace(req.Cargo),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Telefone: strings.TrimSpace(req.Telefone),

		EmailLogin: emailLogin,
		SenhaHash:  string(hashed),
		Perfil:     string(p),
		Ativo:      true,
	}

	if err := h.db.Create(&f).Error; err != nil {
		httperr.Internal(c, "failed_to_create_funcionario", "Erro ao criar funcionário.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "funcionario_criado",
		Entidade:      "funcionario",
		EntidadeID:    &f.ID,
	})

	httpresp.Created(c, f)
}

func (h *FuncionarioHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var f models.Funcionario
	if err := h.db.First(&f, id).Error; err != nil {
		httperr.NotFound(c, "funcionario_nao_encontrado", "Funcionário não encontrado.")
		return
	}

	var req UpdateFuncionarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Nome != nil {
		f.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Cargo != nil {
		f.Cargo = strings.TrimSpace(*req.Cargo)
	}
	if req.Email != nil {
		f.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Telefone != nil {
		f.Telefone = strings.TrimSpace(*req.Telefone)
	}

	if req.EmailLogin != nil {
		emailLogin := strings.ToLower(strings.TrimSpace(*req.EmailLogin))
		if emailLogin != f.EmailLogin {
			if !validators.IsEmailDomainValid(emailLogin) {
				httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
				return
			}
			var count int64
			h.db.Model(&models.Funcionario{}).
				Where("email_login = ? AND id <> ?", emailLogin, f.ID).
				Count(&count)
			if count > 0 {
				httperr.BadRequest(c, "email_login_ja_existe", "Já existe um funcionário com este e-mail de acesso.")
				return
			}
			f.EmailLogin = emailLogin
		}
	}

	if req.Senha != nil {
		if len(*req.Senha) < 6 {
			httperr.BadRequest(c, "senha_curta", "A senha deve ter pelo menos 6 caracteres.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
			return
		}
		f.SenhaHash = string(hashed)
	}

	if req.Perfil != nil {
		p := perfil.Parse(*req.Perfil)
		if !p.Valido() {
			httperr.BadRequest(c, "perfil_invalido", "Perfil inválido.")
			return
		}
		f.Perfil = string(p)
	}

	if req.Ativo != nil {
		if !*req.Ativo && f.ID == funcionarioAutor(c) {
			httperr.BadRequest(c, "nao_pode_desativar_a_si_mesmo", "Você não pode desativar a própria conta.")
			return
		}
		f.Ativo = *req.Ativo
	}

	if err := h.db.Save(&f).Error; err != nil {
		httperr.Internal(c, "failed_to_update_funcionario", "Erro ao atualizar funcionário.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "funcionario_atualizado",
		Entidade:      "funcionario",
		EntidadeID:    &f.ID,
	})

	httpresp.OK(c, f)
}

// ======================================================
// DELETE
// ======================================================

func (h *FuncionarioHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if id == funcionarioAutor(c) {
		httperr.BadRequest(c, "nao_pode_excluir_a_si_mesmo", "Você não pode excluir a própria conta.")
		return
	}

	var f models.Funcionario
	if err := h.db.First(&f, id).Error; err != nil {
		httperr.NotFound(c, "funcionario_nao_encontrado", "Funcionário não encontrado.")
		return
	}

	guards := []struct {
		model any
		code  string
		msg   string
	}{
		{&models.Atendimento{}, "funcionario_possui_atendimentos", "Não é possível excluir: o funcionário possui atendimentos."},
		{&models.Agendamento{}, "funcionario_possui_agendamentos", "Não é possível excluir: o funcionário possui agendamentos."},
		{&models.HorarioDisponivel{}, "funcionario_possui_horarios", "Não é possível excluir: o funcionário possui horários cadastrados."},
	}

	for _, g := range guards {
		var count int64
		if err := h.db.Model(g.model).Where("funcionario_id = ?", f.ID).Count(&count).Error; err != nil {
			httperr.Internal(c, "failed_to_delete_funcionario", "Erro ao excluir funcionário.")
			return
		}
		if count > 0 {
			httperr.BadRequest(c, g.code, g.msg)
			return
		}
	}

	if err := h.db.Delete(&f).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_funcionario", "Erro ao excluir funcionário.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "funcionario_excluido",
		Entidade:      "funcionario",
		EntidadeID:    &f.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
