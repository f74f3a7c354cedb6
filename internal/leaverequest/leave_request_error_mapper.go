package leaverequest

import (
	"errors"

	leaverequesterrors "hrfiles/internal/leaverequest/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaverequesterrors.ErrLeaveRequestNotFound
	}

	return err
}
