package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mandi/db"
	"mandi/middleware"
	"mandi/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Identity is what checkout needs to know about the buyer. Supplied as
// already-validated input; the order code never inspects credentials.
type Identity struct {
	UserID   string
	Name     string
	Location string
	Phone    string
}

// IdentityProvider resolves the acting user for a request. The core depends
// on this interface only, so the credential scheme behind it can change
// without touching cart or order code.
type IdentityProvider interface {
	FromRequest(r *http.Request) (Identity, error)
}

var ErrNoIdentity = errors.New("no authenticated user")

// TokenIdentity resolves identity from the request's JWT and fills in
// contact details from the profile store when available.
type TokenIdentity struct{}

func (TokenIdentity) FromRequest(r *http.Request) (Identity, error) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		return Identity{}, ErrNoIdentity
	}

	id := Identity{UserID: claims.UserID, Name: claims.Name}

	// Profile is optional; the token alone is enough to act.
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	var profile models.UserProfile
	if err := db.ProfileCollection.FindOne(ctx, bson.M{"userId": claims.UserID}).Decode(&profile); err == nil {
		if profile.Name != "" {
			id.Name = profile.Name
		}
		id.Location = profile.Location
		id.Phone = profile.Phone
	}

	return id, nil
}
