package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	ok := AppConfig{JWTSecret: "s3cret", AdminEmail: "admin@sgm.com", AdminPassword: "admin123"}
	assert.NoError(t, ok.Validate())

	noSecret := ok
	noSecret.JWTSecret = "  "
	assert.EqualError(t, noSecret.Validate(), "JWT_SECRET is not set")

	noAdmin := ok
	noAdmin.AdminPassword = ""
	assert.Error(t, noAdmin.Validate())
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SGM_FLAG", "yes")
	assert.True(t, GetEnvBool("SGM_FLAG", false))
	t.Setenv("SGM_FLAG", "off")
	assert.False(t, GetEnvBool("SGM_FLAG", true))
	t.Setenv("SGM_FLAG", "maybe")
	assert.True(t, GetEnvBool("SGM_FLAG", true))
}
