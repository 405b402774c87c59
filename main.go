package main

import (
	"errors"

	"github.com/mordilloSan/classlog/logger"
)

type node struct {
	Name string
	Next *node
}

// Store is a sample type that logs through an embedded instance logger.
type Store struct {
	*logger.Instance
	data map[string]string

	Get func(key string) (string, error)
}

func NewStore() *Store {
	s := &Store{
		Instance: logger.NewInstance("Store"),
		data:     map[string]string{},
	}
	s.Get = logger.LogCalls1E(s, "Get", s.get)
	return s
}

func (s *Store) get(key string) (string, error) {
	v, ok := s.data[key]
	if !ok {
		return "", errors.New("missing key " + key)
	}
	return v, nil
}

// Example demonstrating the logger. Run with LOG_LEVEL=3 to see every line.
func main() {
	logger.Log(logger.ErrorLevel, "threshold is", int(logger.Threshold()))
	logger.Log(logger.InfoLevel, "multi\nline", true, nil, 42, map[string]any{"k": []int{1, 2}})

	loop := &node{Name: "loop"}
	loop.Next = loop
	logger.Log(logger.WarningLevel, "cyclic value:", loop)

	a, b := NewStore(), NewStore()
	a.data["greeting"] = "hi"
	a.LogInfo("ready")
	b.LogWarning("empty")

	if _, err := a.Get("greeting"); err != nil {
		a.LogError(err)
	}
	if _, err := b.Get("greeting"); err != nil {
		b.LogError(err)
	}
	a.Log(logger.Severity(9), "unnamed severities are labeled DEBUG")
}
