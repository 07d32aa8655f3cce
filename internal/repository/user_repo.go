package repository

import (
	"context"
	"fmt"

	"utube/internal/model"

	"gorm.io/gorm"
)

const userColumns = `username, created_at, first_name, last_name, email, avatar_image, cover_image, about`

var userList = ListQuery{
	Select:  "SELECT " + userColumns + " FROM users",
	OrderBy: "created_at, username",
	Limit:   250,
}

// UserColumns 用户可更新字段到列名的映射
var UserColumns = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"avatarImage": "avatar_image",
	"coverImage":  "cover_image",
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 插入用户，Password 需已是哈希值
func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	var created model.User
	err := r.db.WithContext(ctx).Raw(
		`INSERT INTO users (username, password, first_name, last_name, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		user.Username, user.Password, user.FirstName, user.LastName, user.Email,
	).Scan(&created).Error
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &created, nil
}

// GetWithPassword 查询用户并带上密码哈希，仅用于登录校验
func (r *UserRepository) GetWithPassword(ctx context.Context, username string) (*model.User, error) {
	return r.get(ctx, "password, "+userColumns, username)
}

// GetByUsername 查询用户（不含密码）
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.get(ctx, userColumns, username)
}

func (r *UserRepository) get(ctx context.Context, columns, username string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Raw(
		"SELECT "+columns+" FROM users WHERE username = $1", username,
	).Scan(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("select user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// Exists 用户是否存在
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(
		"SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)", username,
	).Scan(&exists).Error
	if err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	return exists, nil
}

// List 按注册时间升序返回最多 250 个用户
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query, args := userList.Build(nil)
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update 部分更新用户资料
func (r *UserRepository) Update(ctx context.Context, username string, changes Changes) (*model.User, error) {
	set, err := BuildPartialUpdate(changes, UserColumns)
	if err != nil {
		return nil, err
	}

	var user model.User
	result := r.db.WithContext(ctx).Raw(
		fmt.Sprintf("UPDATE users SET %s WHERE username = $%d RETURNING %s", set.SQL(), set.NextIndex(), userColumns),
		append(set.Args, username)...,
	).Scan(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// Delete 删除用户，返回是否有行被删除
func (r *UserRepository) Delete(ctx context.Context, username string) (bool, error) {
	result := r.db.WithContext(ctx).Exec("DELETE FROM users WHERE username = $1", username)
	if result.Error != nil {
		return false, fmt.Errorf("delete user: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
