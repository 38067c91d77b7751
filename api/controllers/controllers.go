// Package controllers wires the scoring REST API: one controller per
// concern, each registering its own routes and owning only the storage
// interfaces it needs.
package controllers

import "github.com/google/uuid"

func isValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
