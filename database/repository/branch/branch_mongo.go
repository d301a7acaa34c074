package branchRepo

import (
	"context"
	"fmt"
	"time"

	"sufra/database"
	"sufra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBranchRepo implements BranchRepository using MongoDB.
type MongoBranchRepo struct {
	coll *mongo.Collection
}

// NewMongoBranchRepo creates a new instance of BranchRepository using MongoDB.
func NewMongoBranchRepo() BranchRepository {
	// Use the "sufra" database and the "branches" collection.
	coll := database.MongoClient.Database("sufra").Collection("branches")
	return &MongoBranchRepo{coll: coll}
}

func (r *MongoBranchRepo) Create(branch *models.Branch) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, branch)
	if err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}
	return nil
}

func (r *MongoBranchRepo) GetByID(id string) (*models.Branch, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var branch models.Branch
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&branch); err != nil {
		return nil, fmt.Errorf("failed to fetch branch with id %s: %w", id, err)
	}
	return &branch, nil
}

func (r *MongoBranchRepo) GetAll() ([]models.Branch, error) {
	return r.list(bson.M{"deleted": false})
}

func (r *MongoBranchRepo) ListDeleted() ([]models.Branch, error) {
	return r.list(bson.M{"deleted": true})
}

func (r *MongoBranchRepo) list(filter bson.M) ([]models.Branch, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve branches: %w", err)
	}
	defer cursor.Close(ctx)
	var branches []models.Branch
	for cursor.Next(ctx) {
		var b models.Branch
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode branch: %w", err)
		}
		branches = append(branches, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return branches, nil
}

func (r *MongoBranchRepo) Update(branch *models.Branch) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	branch.UpdatedAt = time.Now()
	filter := bson.M{"id": branch.ID}
	update := bson.M{"$set": branch}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update branch with id %s: %w", branch.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("branch with id %s not found", branch.ID)
	}
	return nil
}

// SoftDelete moves a branch into the recycle bin.
func (r *MongoBranchRepo) SoftDelete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	now := time.Now()
	filter := bson.M{"id": id, "deleted": false}
	update := bson.M{"$set": bson.M{"deleted": true, "deletedAt": now, "updatedAt": now}}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete branch with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("branch with id %s not found", id)
	}
	return nil
}

// Restore takes a branch back out of the recycle bin.
func (r *MongoBranchRepo) Restore(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id, "deleted": true}
	update := bson.M{
		"$set":   bson.M{"deleted": false, "updatedAt": time.Now()},
		"$unset": bson.M{"deletedAt": ""},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to restore branch with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("deleted branch with id %s not found", id)
	}
	return nil
}

// Purge permanently removes recycled branches deleted before the cutoff.
func (r *MongoBranchRepo) Purge(olderThan time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	filter := bson.M{"deleted": true, "deletedAt": bson.M{"$lt": olderThan}}
	result, err := r.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to purge recycled branches: %w", err)
	}
	return result.DeletedCount, nil
}
