package dto

type TwoFactorCodeInput struct {
	Code string `json:"code"`
}

type TwoFactorSetupOutput struct {
	Secret       string `json:"secret"`
	QRCodeURL    string `json:"qrCode"`
	Instructions string `json:"instructions"`
}
