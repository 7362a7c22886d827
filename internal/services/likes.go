package services

import (
	"errors"

	"myblog/internal/db"
	"myblog/internal/models"

	"gorm.io/gorm"
)

// ToggleResult reports the state after a like toggle. LikeCount is always
// the authoritative COUNT(*) over live like rows, read inside the same
// transaction as the mutation; it is never the result of counter
// arithmetic.
type ToggleResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// TogglePostLike flips the (post, user) like state. Posts carry a
// denormalized like_count column that is kept in step transactionally:
// decremented with a floor of zero on unlike, and reconciled to the
// authoritative row count before commit. A concurrent duplicate insert
// trips the unique index and surfaces as ErrDuplicateAction.
func TogglePostLike(postID, userID uint) (ToggleResult, error) {
	var result ToggleResult

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id").First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.PostLike
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - 1, 0)")).Error; err != nil {
				return err
			}
			result.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.PostLike{PostID: postID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				if isUniqueViolation(err) {
					return ErrDuplicateAction
				}
				return err
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
				return err
			}
			result.Liked = true
		default:
			return err
		}

		// Authoritative count from the live rows, then reconcile the
		// stored column so it cannot drift.
		if err := tx.Model(&models.PostLike{}).Where("post_id = ?", postID).
			Count(&result.LikeCount).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("like_count", result.LikeCount).Error
	})
	if err != nil {
		return ToggleResult{}, err
	}
	return result, nil
}

// ToggleMomentLike flips the (moment, user) like state. Moments never
// persist a counter; the count is always computed live.
func ToggleMomentLike(momentID, userID uint) (ToggleResult, error) {
	var result ToggleResult

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var moment models.Moment
		if err := tx.Select("id").First(&moment, momentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var existing models.MomentLike
		err := tx.Where("moment_id = ? AND user_id = ?", momentID, userID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			result.Liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := models.MomentLike{MomentID: momentID, UserID: userID}
			if err := tx.Create(&like).Error; err != nil {
				if isUniqueViolation(err) {
					return ErrDuplicateAction
				}
				return err
			}
			result.Liked = true
		default:
			return err
		}

		return tx.Model(&models.MomentLike{}).Where("moment_id = ?", momentID).
			Count(&result.LikeCount).Error
	})
	if err != nil {
		return ToggleResult{}, err
	}
	return result, nil
}
