package service

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
