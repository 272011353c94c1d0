package fiberlog

import "github.com/sirupsen/logrus"

// Config настраивает middleware логирования запросов
type Config struct {
	// Logger может быть nil, тогда используется глобальный logrus
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault содержит стандартный набор тегов запроса
var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
	},
}
