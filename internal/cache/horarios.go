package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/PetCareServices/petcare-api/internal/models"
)

// HorariosCache guarda em Redis as listagens de horários disponíveis por
// (data, funcionário). Qualquer escrita de horário na data invalida as
// entradas daquela data. Sem REDIS_URL o cache fica desligado e todas as
// operações viram no-op.
type HorariosCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewHorariosCache(redisURL string, log zerolog.Logger) *HorariosCache {
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("REDIS_URL inválida, cache de horários desligado")
		return nil
	}

	return &HorariosCache{
		rdb: redis.NewClient(opt),
		ttl: 30 * time.Second,
		log: log,
	}
}

func chave(data string, funcionarioID uint) string {
	return fmt.Sprintf("horarios:%s:%d", data, funcionarioID)
}

func (c *HorariosCache) Get(
	ctx context.Context,
	data string,
	funcionarioID uint,
) ([]models.HorarioDisponivel, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, chave(data, funcionarioID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("falha ao ler cache de horários")
		}
		return nil, false
	}

	var horarios []models.HorarioDisponivel
	if err := json.Unmarshal([]byte(raw), &horarios); err != nil {
		return nil, false
	}
	return horarios, true
}

func (c *HorariosCache) Set(
	ctx context.Context,
	data string,
	funcionarioID uint,
	horarios []models.HorarioDisponivel,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(horarios)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, chave(data, funcionarioID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("falha ao gravar cache de horários")
	}
}

// Invalidar remove todas as entradas da data.
func (c *HorariosCache) Invalidar(ctx context.Context, data string) {
	if c == nil {
		return
	}

	iter := c.rdb.Scan(ctx, 0, fmt.Sprintf("horarios:%s:*", data), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn().Err(err).Msg("falha ao invalidar cache de horários")
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Msg("falha ao varrer cache de horários")
	}
}
