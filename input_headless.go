//go:build headless

package main

import "errors"

func init() {
	compiledFeatures = append(compiledFeatures, "frontend:headless")
}

func NewEbitenFrontend(cfg Config) (Frontend, error) {
	return nil, errors.New("ebiten frontend not available in headless builds, use -frontend terminal")
}
