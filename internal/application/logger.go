package application

import (
	"io"

	"github.com/bnema/deathchest/internal/ports"
	"github.com/sirupsen/logrus"
)

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func playerFields(player ports.Player) logrus.Fields {
	return logrus.Fields{
		"player":      player.ID().String(),
		"player_name": player.Name(),
	}
}
