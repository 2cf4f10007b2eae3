package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/synapse-hq/synapse/pkg/document"
	"github.com/synapse-hq/synapse/pkg/profile"
	"github.com/synapse-hq/synapse/pkg/security/jwt"
)

var (
	errUnauthenticated = errors.New("not authenticated")
	errInvalidID       = errors.New("invalid id")
	errFileRequired    = errors.New("file is required")
	errInvalidPayload  = errors.New("invalid JSON payload")
)

// currentUser reads the subject placed into Locals by the auth middleware.
func currentUser(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(jwt.LocalUserID).(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errUnauthenticated
	}
	return id, nil
}

func uuidParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", errInvalidID, name)
	}
	return id, nil
}

// readUpload reads the "file" form field, bounded by the kind's size limit.
func readUpload(c *fiber.Ctx, kind document.Kind) (profile.UploadInput, error) {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return profile.UploadInput{}, errFileRequired
	}
	if _, err := document.Check(kind, fh.Filename, fh.Size); err != nil {
		return profile.UploadInput{}, err
	}
	file, err := fh.Open()
	if err != nil {
		return profile.UploadInput{}, fmt.Errorf("open uploaded file: %w", err)
	}
	defer file.Close()
	data, err := document.ReadAtMost(file, document.PolicyFor(kind).MaxBytes)
	if err != nil {
		return profile.UploadInput{}, err
	}
	return profile.UploadInput{
		Filename: fh.Filename,
		MimeType: fh.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
