package ports

import "github.com/bnema/deathchest/internal/domain"

type ItemCodec interface {
	Serialize(item domain.Item) (domain.ItemRecord, error)
	Deserialize(record domain.ItemRecord) (domain.Item, error)
}
