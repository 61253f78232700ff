package pagamento

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/PetCareServices/petcare-api/internal/httperr"
	"github.com/PetCareServices/petcare-api/internal/models"
)

// Client gera preferências de pagamento do Mercado Pago a partir dos
// itens de um atendimento concluído.
type Client struct {
	pref preference.Client
}

func New(accessToken string) (*Client, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Client{pref: preference.NewClient(cfg)}, nil
}

func (c *Client) Habilitado() bool {
	return c != nil
}

// Cobranca é o que o console precisa para encaminhar o tutor ao checkout.
type Cobranca struct {
	PreferenciaID string `json:"preferencia_id"`
	InitPoint     string `json:"init_point"`
}

func (c *Client) CriarCobranca(
	ctx context.Context,
	at *models.Atendimento,
) (*Cobranca, error) {

	if at.ValorTotal <= 0 {
		return nil, httperr.ErrBusiness("atendimento_sem_valor")
	}

	items := make([]preference.ItemRequest, 0, len(at.Itens))
	for _, item := range at.Itens {
		items = append(items, preference.ItemRequest{
			ID:         fmt.Sprintf("%d", item.ID),
			Title:      item.Nome,
			Quantity:   item.Quantidade,
			UnitPrice:  item.ValorUnitario,
			CurrencyID: "BRL",
		})
	}

	resource, err := c.pref.Create(ctx, preference.Request{
		Items:             items,
		ExternalReference: fmt.Sprintf("atendimento-%d", at.ID),
	})
	if err != nil {
		return nil, err
	}

	return &Cobranca{
		PreferenciaID: resource.ID,
		InitPoint:     resource.InitPoint,
	}, nil
}
