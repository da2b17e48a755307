package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-post-board/models"
)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "created_at"}
	postColumns = []string{"id", "user_id", "title", "description", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("name", "email", "password_hash").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert(post.TableName()).
		Columns("user_id", "title", "description").
		Values(post.UserID, post.Title, post.Description).
		Suffix(returning(postColumns)).
		ToSql()
}

func buildSelectPostsByUserIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}
