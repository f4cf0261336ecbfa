package user

type CreateUserInput struct {
	Name     string `form:"name" json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email    string `form:"email" json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `form:"password" json:"password" binding:"required,min=6" example:"password123"`
	PhotoURL string `form:"photo_url" json:"photo_url" binding:"omitempty,url" example:"https://i.example.com/jane.png"`
}

type LoginInput struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type GoogleLoginInput struct {
	IDToken string `form:"id_token" json:"id_token" binding:"required"`
}

type UpdateUserInput struct {
	Name        *string `form:"name" json:"name" binding:"omitempty,min=2,max=100"`
	PhotoURL    *string `form:"photo_url" json:"photo_url" binding:"omitempty,url"`
	OldPassword *string `form:"old_password" json:"old_password"`
	Password    *string `form:"password" json:"password" binding:"omitempty,min=6"`
}

type UpdateRoleInput struct {
	Role string `form:"role" json:"role" binding:"required,oneof=user moderator admin" example:"moderator"`
}

type UserDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhotoURL    string  `json:"photo_url"`
	Provider    string  `json:"provider"`
	Role        Role    `json:"role"`
	LastLoginAt *string `json:"last_login_at"`
	CreatedAt   string  `json:"created_at"`
}

func ToDTO(u User) UserDTO {
	dto := UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
		Provider:  u.Provider,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.LastLoginAt != nil {
		s := u.LastLoginAt.Format("2006-01-02 15:04:05")
		dto.LastLoginAt = &s
	}
	return dto
}

func ToDTOs(users []User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToDTO(u))
	}
	return out
}
