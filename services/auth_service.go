package services

import (
	"errors"
	"time"

	"github.com/SuperEjay/pos-sub000/entity"
	"github.com/SuperEjay/pos-sub000/repository"
	"github.com/SuperEjay/pos-sub000/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	Repo      *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Repo: repo, JWTSecret: secret, JWTTTL: ttl}
}

type LoginRes struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
}

func (s *AuthService) Login(email, password string) (*LoginRes, error) {
	u, err := s.Repo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Role, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &LoginRes{Token: token, User: *u}, nil
}

func (s *AuthService) Me(userID uint) (*entity.User, error) {
	return s.Repo.FindByID(userID)
}

type CreateStaffReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

func (s *AuthService) CreateStaff(req *CreateStaffReq) (*entity.User, error) {
	if req.Role == "" {
		req.Role = "staff"
	}
	if req.Role != "staff" && req.Role != "admin" {
		return nil, validationError("unknown role")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := entity.User{
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	}
	if err := s.Repo.Create(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *AuthService) ListStaff() ([]entity.User, error) {
	return s.Repo.List()
}
