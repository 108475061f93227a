package scribble

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUserRepository struct {
	collection *mongo.Collection
}

type dbUser struct {
	ID            ID `bson:"_id"`
	Username      string
	PasswordHash  string
	Administrator bool
	CreatedAt     time.Time
}

func NewMongoUserRepository(c *mongo.Collection) Repository {
	return &mongoUserRepository{collection: c}
}

func (m *mongoUserRepository) FindByName(ctx context.Context, username string) (*User, error) {
	var u dbUser
	sr := m.collection.FindOne(ctx, bson.M{"username": username})

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}

	if err := sr.Decode(&u); err != nil {
		return nil, err
	}

	nU := userFromDBUser(u)
	return &nU, nil
}

func (m *mongoUserRepository) Store(ctx context.Context, u *User) error {
	dbu := dbUserFromUser(u)
	_, err := m.collection.InsertOne(ctx, &dbu)
	if mongo.IsDuplicateKeyError(err) {
		return ErrExistingUsername
	}
	return err
}

func dbUserFromUser(u *User) dbUser {
	return dbUser{u.ID, u.Username, u.PasswordHash, u.Administrator, u.CreatedAt}
}

func userFromDBUser(u dbUser) User {
	return User{u.ID, u.Username, u.PasswordHash, u.Administrator, u.CreatedAt}
}
