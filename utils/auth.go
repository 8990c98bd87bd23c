package utils

import (
	"errors"

	"github.com/formbase/forms-go/types"
	"github.com/gin-gonic/gin"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

// GetUserIdentity returns the caller's id and email as opaque strings, the
// only identity shape the form service accepts.
var GetUserIdentity = func(c *gin.Context) (string, string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", "", err
	}
	return claims.UserID, claims.Email, nil
}
