package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo    *UserRepo
	blogRepo    *BlogRepo
	commentRepo *CommentRepo
	likeRepo    *LikeRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		blogRepo:    NewBlogRepo(db),
		commentRepo: NewCommentRepo(db),
		likeRepo:    NewLikeRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) LikeRepo() *LikeRepo {
	return d.likeRepo
}
