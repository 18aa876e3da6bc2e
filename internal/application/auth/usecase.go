package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/marchand/boutique-api/internal/application/dto"
	"github.com/marchand/boutique-api/internal/domain"
	"github.com/marchand/boutique-api/internal/domain/entity"
	"github.com/marchand/boutique-api/internal/domain/repository"
	"github.com/marchand/boutique-api/pkg/jwt"
)

// Config paramètres de signature des tokens.
type Config struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase authentification du back-office.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
}

// NewUseCase construit le cas d'usage.
func NewUseCase(users repository.UserRepository, cfg Config) *UseCase {
	if cfg.ExpMinutes <= 0 {
		cfg.ExpMinutes = 60 * 12
	}
	return &UseCase{users: users, cfg: cfg}
}

// Login vérifie les identifiants et renvoie un token signé. L'erreur est la
// même quel que soit le champ fautif pour ne pas révéler l'existence du compte.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.cfg.Secret, u.ID, u.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(u)}, nil
}

// Register crée un utilisateur back-office (réservé au rôle admin).
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleGestionnaire
	}
	if role != entity.RoleAdmin && role != entity.RoleGestionnaire {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// Me renvoie l'utilisateur du token courant.
func (uc *UseCase) Me(userID string) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(u), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
