package dto

// SetThemeRequest persists the UI theme preference in a cookie
type SetThemeRequest struct {
	Theme string `json:"theme" form:"theme" validate:"required,ui_theme"`
}

// ThemeResponse echoes the active theme
type ThemeResponse struct {
	Theme string `json:"theme"`
}
