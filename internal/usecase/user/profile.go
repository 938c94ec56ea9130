package usecase

import (
	"strings"

	"github.com/gogreen/tree-donation-service/internal/domain"
	userdto "github.com/gogreen/tree-donation-service/internal/usecase/dto/user"
)

func (uc *DefaultUserUsecase) Profile(userID uint) (*userdto.UserOutput, error) {
	user, err := uc.UserRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserOutput(user), nil
}

// UpdateProfile changes the mutable account fields. Email is identity and
// cannot be edited here.
func (uc *DefaultUserUsecase) UpdateProfile(userID uint, input *userdto.UpdateProfileInput) (*userdto.UserOutput, error) {
	user, err := uc.UserRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updated := false
	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" {
			return nil, domain.E(domain.KindValidation, "full_name cannot be empty")
		}
		user.FullName = name
		updated = true
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
		updated = true
	}
	if input.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*input.AvatarURL)
		updated = true
	}
	if !updated {
		return nil, domain.ErrNothingToUpdate
	}

	if err := uc.UserRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return toUserOutput(user), nil
}
