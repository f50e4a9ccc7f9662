package validator

import (
	"log"

	"crewlink_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs domain validation tags on the validator
// instance. Registration failures abort startup.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-experience-level", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "apprentice", "journeyman", "foreman":
			return true
		}
		return false
	})

	mustRegister("is-notification-status", func(fl validator.FieldLevel) bool {
		switch models.NotificationStatus(fl.Field().String()) {
		case models.NotificationStatusPending,
			models.NotificationStatusSent,
			models.NotificationStatusFailed,
			models.NotificationStatusNew,
			models.NotificationStatusViewed,
			models.NotificationStatusResponded,
			models.NotificationStatusArchived:
			return true
		}
		return false
	})
}
