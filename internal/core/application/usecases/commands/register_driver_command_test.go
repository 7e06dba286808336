package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterDriverCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRegisterDriverCommand(
		"dave42", "hunter22", "Dave Porter", "Honda Civic", "Blue", "ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, "dave42", cmd.Username())
	assert.Equal(t, "hunter22", cmd.Password())
	assert.Equal(t, "Dave Porter", cmd.FullName())
	assert.Equal(t, "Honda Civic", cmd.VehicleModel())
	assert.Equal(t, "Blue", cmd.VehicleColor())
	assert.Equal(t, "ABC-1234", cmd.LicensePlate())
}

func TestNewRegisterDriverCommand_TrimsUsername(t *testing.T) {
	cmd, err := commands.NewRegisterDriverCommand(
		"  dave42  ", "hunter22", "Dave Porter", "Honda Civic", "Blue", "ABC-1234")
	require.NoError(t, err)
	assert.Equal(t, "dave42", cmd.Username())
}

func TestNewRegisterDriverCommand_ShortUsername(t *testing.T) {
	_, err := commands.NewRegisterDriverCommand(
		"abc", "hunter22", "Dave Porter", "Honda Civic", "Blue", "ABC-1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRegisterDriverCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewRegisterDriverCommand(
		"dave42", "12345", "Dave Porter", "Honda Civic", "Blue", "ABC-1234")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRegisterDriverCommand_MissingVehicleFields(t *testing.T) {
	_, err := commands.NewRegisterDriverCommand(
		"dave42", "hunter22", "Dave Porter", "", "Blue", "ABC-1234")
	require.Error(t, err)

	_, err = commands.NewRegisterDriverCommand(
		"dave42", "hunter22", "Dave Porter", "Honda Civic", "", "ABC-1234")
	require.Error(t, err)

	_, err = commands.NewRegisterDriverCommand(
		"dave42", "hunter22", "Dave Porter", "Honda Civic", "Blue", "")
	require.Error(t, err)
}

func TestRegisterDriverCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.RegisterDriverCommand{}
	require.Error(t, cmd.Validate())
}
