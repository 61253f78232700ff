package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PetCareServices/petcare-api/internal/audit"
	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/httpresp"
	"github.com/PetCareServices/petcare-api/internal/models"
	"github.com/PetCareServices/petcare-api/internal/storage"
)

type PetHandler struct {
	db    *gorm.DB
	fotos *storage.FotoStorage
	audit *audit.Dispatcher
}

func NewPetHandler(db *gorm.DB, fotos *storage.FotoStorage, audit *audit.Dispatcher) *PetHandler {
	return &PetHandler{db: db, fotos: fotos, audit: audit}
}

// --------- Requests ---------

type CreatePetRequest struct {
	ClienteID uint `json:"cliente_id" binding:"required"`

	Nome       string  `json:"nome" binding:"required"`
	Especie    string  `json:"especie"`
	Raca       string  `json:"raca"`
	Nascimento string  `json:"nascimento"`
	Peso       float64 `json:"peso"`
	Sexo       string  `json:"sexo"`
}

type UpdatePetRequest struct {
	ClienteID *uint `json:"cliente_id"`

	Nome       *string  `json:"nome"`
	Especie    *string  `json:"especie"`
	Raca       *string  `json:"raca"`
	Nascimento *string  `json:"nascimento"`
	Peso       *float64 `json:"peso"`
	Sexo       *string  `json:"sexo"`
}

func parseNascimento(s string) (*time.Time, bool) {
	if s == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// ======================================================
// LIST / GET
// ======================================================

func (h *PetHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Pet{})

	if clienteID := c.Query("cliente_id"); clienteID != "" {
		q = q.Where("cliente_id = ?", clienteID)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(nome) LIKE ? OR LOWER(cliente_nome) LIKE ?", like, like)
	}

	var pets []models.Pet
	if err := q.Order("nome ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "failed_to_list_pets", "Erro ao listar pets.")
		return
	}

	httpresp.List(c, pets)
}

func (h *PetHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		httperr.NotFound(c, "pet_nao_encontrado", "Pet não encontrado.")
		return
	}

	httpresp.OK(c, pet)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, req.ClienteID).Error; err != nil {
		httperr.NotFound(c, "cliente_nao_encontrado", "Cliente não encontrado.")
		return
	}

	nascimento, ok := parseNascimento(req.Nascimento)
	if !ok {
		httperr.BadRequest(c, "nascimento_invalido", "Data de nascimento inválida (use AAAA-MM-DD).")
		return
	}

	pet := models.Pet{
		ClienteID:   cliente.ID,
		ClienteNome: cliente.Nome,

		Nome:       strings.TrimSpace(req.Nome),
		Especie:    strings.TrimSpace(req.Especie),
		Raca:       strings.TrimSpace(req.Raca),
		Nascimento: nascimento,
		Peso:       req.Peso,
		Sexo:       strings.ToUpper(strings.TrimSpace(req.Sexo)),
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_create_pet", "Erro ao criar pet.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "pet_criado",
		Entidade:      "pet",
		EntidadeID:    &pet.ID,
	})

	httpresp.Created(c, pet)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		httperr.NotFound(c, "pet_nao_encontrado", "Pet não encontrado.")
		return
	}

	var req UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.ClienteID != nil && *req.ClienteID != pet.ClienteID {
		var cliente models.Cliente
		if err := h.db.First(&cliente, *req.ClienteID).Error; err != nil {
			httperr.NotFound(c, "cliente_nao_encontrado", "Cliente não encontrado.")
			return
		}
		pet.ClienteID = cliente.ID
		pet.ClienteNome = cliente.Nome
	}

	if req.Nome != nil {
		pet.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Especie != nil {
		pet.Especie = strings.TrimSpace(*req.Especie)
	}
	if req.Raca != nil {
		pet.Raca = strings.TrimSpace(*req.Raca)
	}
	if req.Nascimento != nil {
		nascimento, ok := parseNascimento(*req.Nascimento)
		if !ok {
			httperr.BadRequest(c, "nascimento_invalido", "Data de nascimento inválida (use AAAA-MM-DD).")
			return
		}
		pet.Nascimento = nascimento
	}
	if req.Peso != nil {
		pet.Peso = *req.Peso
	}
	if req.Sexo != nil {
		pet.Sexo = strings.ToUpper(strings.TrimSpace(*req.Sexo))
	}

	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Erro ao atualizar pet.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "pet_atualizado",
		Entidade:      "pet",
		EntidadeID:    &pet.ID,
	})

	httpresp.OK(c, pet)
}

// ======================================================
// FOTO
// ======================================================

func (h *PetHandler) UploadFoto(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if !h.fotos.Habilitado() {
		httperr.BadRequest(c, "storage_desabilitado", "O armazenamento de fotos não está configurado.")
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		httperr.NotFound(c, "pet_nao_encontrado", "Pet não encontrado.")
		return
	}

	file, err := c.FormFile("foto")
	if err != nil {
		httperr.BadRequest(c, "foto_obrigatoria", "Envie o arquivo no campo 'foto'.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_foto", "Erro ao ler o arquivo.")
		return
	}
	defer src.Close()

	url, err := h.fotos.Upload(c.Request.Context(), pet.ID, src)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_foto", "Erro ao enviar a foto.")
		return
	}

	pet.FotoURL = url
	if err := h.db.Model(&pet).Update("foto_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_pet", "Erro ao atualizar pet.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "pet_foto_atualizada",
		Entidade:      "pet",
		EntidadeID:    &pet.ID,
	})

	httpresp.OK(c, gin.H{"foto_url": url})
}

// ======================================================
// DELETE
// ======================================================

func (h *PetHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var pet models.Pet
	if err := h.db.First(&pet, id).Error; err != nil {
		httperr.NotFound(c, "pet_nao_encontrado", "Pet não encontrado.")
		return
	}

	var count int64
	if err := h.db.Model(&models.Atendimento{}).Where("pet_id = ?", pet.ID).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Erro ao excluir pet.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "pet_possui_atendimentos", "Não é possível excluir: o pet possui atendimentos.")
		return
	}

	if err := h.db.Model(&models.Agendamento{}).Where("pet_id = ?", pet.ID).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Erro ao excluir pet.")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "pet_possui_agendamentos", "Não é possível excluir: o pet possui agendamentos.")
		return
	}

	if err := h.db.Delete(&pet).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_pet", "Erro ao excluir pet.")
		return
	}

	autor := funcionarioAutor(c)
	h.audit.Dispatch(audit.Event{
		FuncionarioID: &autor,
		Acao:          "pet_excluido",
		Entidade:      "pet",
		EntidadeID:    &pet.ID,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
