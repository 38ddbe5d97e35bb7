package server

import (
	"strings"
	"time"

	"glimpse/internal/middleware"
	"glimpse/internal/models"
	"glimpse/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 5 * 24 * time.Hour

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Account  string `json:"account"`
	Password string `json:"password"`
}

// Register handles user registration.
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if msgs := validation.ValidateRegister(validation.RegisterInput{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}); len(msgs) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationErrors(msgs))
	}

	ctx := c.UserContext()

	// Pre-checks give precise messages; the unique indexes stay authoritative
	// when racing registrations slip past them.
	if existing, err := s.userRepo.GetByUsername(ctx, req.Username); err != nil {
		return s.respondError(c, err)
	} else if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is taken"))
	}
	if existing, err := s.userRepo.GetByEmail(ctx, req.Email); err != nil {
		return s.respondError(c, err)
	} else if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email already registered to an account"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashed),
		Posts:     []primitive.ObjectID{},
		Followers: []primitive.ObjectID{},
		Following: []primitive.ObjectID{},
		Likes:     []primitive.ObjectID{},
		Saved:     []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return s.respondError(c, err)
	}

	token, err := s.generateToken(user.ID.Hex(), user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered", "username", user.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":    token,
		"username": user.Username,
	})
}

// Login handles user authentication. The account field matches either a
// username or an email address.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	req.Account = strings.TrimSpace(req.Account)
	if req.Account == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Account and password are required"))
	}

	ctx := c.UserContext()

	user, err := s.userRepo.GetByUsername(ctx, req.Account)
	if err != nil {
		return s.respondError(c, err)
	}
	if user == nil {
		user, err = s.userRepo.GetByEmail(ctx, strings.ToLower(req.Account))
		if err != nil {
			return s.respondError(c, err)
		}
	}

	// A single message hides whether the account or the password was wrong.
	if user == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid account or password"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid account or password"))
	}

	token, err := s.generateToken(user.ID.Hex(), user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":    token,
		"username": user.Username,
	})
}

func (s *Server) generateToken(userID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(tokenLifetime).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
