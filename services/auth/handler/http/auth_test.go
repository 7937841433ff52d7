package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/krishilink/krishilink/internal/pkg/models"
	"github.com/krishilink/krishilink/services/auth"
	"github.com/krishilink/krishilink/services/auth/mocks"
)

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/otp", `{"contact_number": "9876543210"}`)

	mockAuthUC.EXPECT().
		RequestOTP(gomock.Any(), "9876543210", "").
		Return(&models.OTPResponse{OTPToken: "signed.otp.token", Message: "OTP sent to 9876543210@sms.krishilink.in"}, nil)

	// Act
	err := authHandler.RequestOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OTP sent successfully", response["message"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "signed.otp.token", data["otp_token"])
}

func TestRequestOTP_EmptyContactNumber(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/otp", `{"contact_number": ""}`)

	// Act
	err := authHandler.RequestOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Contact number is required", response["error"])
}

func TestRequestOTP_InvalidPayload(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/otp", `{invalid_json}`)

	// Act
	err := authHandler.RequestOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestOTP_InvalidContact(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/otp", `{"contact_number": "12345"}`)

	mockAuthUC.EXPECT().
		RequestOTP(gomock.Any(), "12345", "").
		Return(nil, auth.ErrInvalidContact)

	// Act
	err := authHandler.RequestOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid contact number", response["error"])
}

func TestRequestOTP_DeliveryFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/otp", `{"contact_number": "9876543210", "email": "ravi@example.com"}`)

	mockAuthUC.EXPECT().
		RequestOTP(gomock.Any(), "9876543210", "ravi@example.com").
		Return(nil, auth.ErrDeliveryFailed)

	// Act
	err := authHandler.RequestOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Failed to send OTP. Please try again.", response["error"])
}

func TestVerifyOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/verify", `{"otp_token": "signed.otp.token", "otp": "123456"}`)

	mockAuthUC.EXPECT().
		VerifyOTP(gomock.Any(), "signed.otp.token", "123456").
		Return(&models.AuthResponse{
			Token:     "session.token",
			UserID:    "2f0a1c9e-0000-0000-0000-000000000000",
			Role:      models.RoleFarmer,
			ExpiresAt: 1700000000,
			NewUser:   true,
		}, nil)

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "session.token", data["token"])
	assert.Equal(t, models.RoleFarmer, data["role"])
	assert.Equal(t, true, data["new_user"])
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/verify", `{"otp_token": "signed.otp.token"}`)

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "OTP token and passcode are required", response["error"])
}

func TestVerifyOTP_InvalidCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/verify", `{"otp_token": "signed.otp.token", "otp": "000000"}`)

	mockAuthUC.EXPECT().
		VerifyOTP(gomock.Any(), "signed.otp.token", "000000").
		Return(nil, auth.ErrInvalidCredentials)

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid or expired OTP", response["error"])
}

func TestVerifyOTP_InternalError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/verify", `{"otp_token": "signed.otp.token", "otp": "123456"}`)

	mockAuthUC.EXPECT().
		VerifyOTP(gomock.Any(), "signed.otp.token", "123456").
		Return(nil, errors.New("redis unreachable"))

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{
		"otp_token": "signed.otp.token",
		"otp": "123456",
		"fullname": "Ravi Kumar",
		"role": "farmer",
		"farmer_info": {"land_location": "Nashik", "soil_type": "black", "land_size_acre": 2.5}
	}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", requestBody)

	mockAuthUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.RegisterRequest) (*models.AuthResponse, error) {
			assert.Equal(t, "Ravi Kumar", req.FullName)
			assert.Equal(t, models.RoleFarmer, req.Role)
			assert.NotNil(t, req.Farmer)
			return &models.AuthResponse{Token: "session.token", Role: models.RoleFarmer}, nil
		})

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Registration successful", response["message"])
}

func TestRegister_MissingNameAndRole(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"otp_token": "signed.otp.token", "otp": "123456"}`)

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Name and role are required", response["error"])
}

func TestRegister_AlreadyRegistered(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"otp_token": "signed.otp.token", "otp": "123456", "fullname": "Ravi Kumar", "role": "farmer"}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", requestBody)

	mockAuthUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrAlreadyRegistered)

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "User already registered", response["error"])
}

func TestRegister_InvalidRole(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"otp_token": "signed.otp.token", "otp": "123456", "fullname": "Ravi Kumar", "role": "wholesaler"}`
	c, rec := newTestContext(http.MethodPost, "/auth/register", requestBody)

	mockAuthUC.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrInvalidRole)

	// Act
	err := authHandler.Register(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"contact_number": "9876543210", "password": "kisan-strong-password"}`)

	mockAuthUC.EXPECT().
		LoginWithPassword(gomock.Any(), "9876543210", "kisan-strong-password").
		Return(&models.AuthResponse{Token: "session.token", Role: models.RoleRetailer}, nil)

	// Act
	err := authHandler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Login successful", response["message"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"contact_number": "9876543210", "password": "wrong"}`)

	mockAuthUC.EXPECT().
		LoginWithPassword(gomock.Any(), "9876543210", "wrong").
		Return(nil, auth.ErrInvalidCredentials)

	// Act
	err := authHandler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "Invalid credentials", response["error"])
}

func TestLogin_MissingFields(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"contact_number": "9876543210"}`)

	// Act
	err := authHandler.Login(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
