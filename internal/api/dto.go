package api

// ResolveContentRequest is the request body for resolving workspace file content.
type ResolveContentRequest struct {
	Path        string `json:"path" example:"notes/hello.md" validate:"required"`
	WorkspaceID string `json:"workspaceId" example:"ws-42" validate:"required"`
}

// ContentResponse carries resolved or stored file content.
type ContentResponse struct {
	Content string `json:"content" example:"# Hello" validate:"required"`
}

// SaveContentRequest is the request body for saving content to the workspace.
type SaveContentRequest struct {
	Path        string `json:"path" example:"notes/hello.md" validate:"required"`
	WorkspaceID string `json:"workspaceId" example:"ws-42" validate:"required"`
	Content     string `json:"content" example:"<p>Hello</p>" validate:"required"`
}

// SaveContentResponse is returned after a successful save.
type SaveContentResponse struct {
	Path     string `json:"path" example:"notes/hello.md" validate:"required"`
	Checksum string `json:"checksum" example:"abc123..." validate:"required"`
}

// NormalizeRequest is the request body for rich-text normalization.
type NormalizeRequest struct {
	Content string `json:"content" example:"# Title"`
}

// CanvasRequest is the request body for saving a canvas document.
type CanvasRequest struct {
	Videos       []string `json:"videos" example:"assets/intro.mp4"`
	Audios       []string `json:"audios" example:"assets/voice.mp3"`
	SoundEffects []string `json:"soundEffects" example:"assets/pop.wav"`
	Content      string   `json:"content" example:"<p>canvas notes</p>"`
}

// VerificationTokenResponse carries a freshly issued one-time token.
// The plaintext is revealed exactly once; only its hash is stored.
type VerificationTokenResponse struct {
	Token string `json:"token" validate:"required"`
}

// ConsumeTokenRequest is the request body for consuming a verification token.
type ConsumeTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// AssetUploadResponse is returned after a successful asset upload.
type AssetUploadResponse struct {
	Filename string `json:"filename" example:"clip.mp4" validate:"required"`
	Size     int64  `json:"size" example:"12345" validate:"required"`
	URL      string `json:"url" example:"/assets/clip.mp4" validate:"required"`
}
