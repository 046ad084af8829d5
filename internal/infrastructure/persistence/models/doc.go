// Package models contains GORM database models for the persistence layer.
// They are kept apart from domain entities so schema changes stay local.
package models
