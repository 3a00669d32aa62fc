// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

	userCharacterColumns = []string{
		"uc.id", "uc.user_id", "uc.active", "uc.main", "uc.created_at", "uc.updated_at",
		"c.id", "c.character_id", "c.name",
	}

	characterLogColumns = []string{"id", "character_id", "system_id", "system_name", "ship_type_name", "updated_at"}

	userAPIColumns = []string{"id", "user_id", "key_id", "v_code", "active"}

	mapColumns = []string{"m.id", "m.name", "m.active"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, name, email, passwordHash string) (string, []any, error) {
	return b.Insert("users").
		Columns("name", "email", "password_hash").
		Values(name, email, passwordHash).
		Suffix("RETURNING id, name, email, password_hash, created_at").
		ToSql()
}

func buildFindUserByNameQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildUpdateEmailQuery(b sq.StatementBuilderType, userID int64, email string) (string, []any, error) {
	return b.Update("users").
		Set("email", email).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildSelectActiveUserCharactersQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userCharacterColumns...).
		From("user_characters uc").
		Join("characters c ON c.id = uc.character_id").
		Where(sq.Eq{"uc.user_id": userID}).
		Where(sq.Eq{"uc.active": true}).
		OrderBy("uc.id").
		ToSql()
}

func buildUpdateMainFlagQuery(b sq.StatementBuilderType, userID, linkID int64, main bool) (string, []any, error) {
	return b.Update("user_characters").
		Set("main", main).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": linkID}).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildSelectBrokenMainCharacterUsersQuery selects users whose active links
// carry zero or several main flags.
func buildSelectBrokenMainCharacterUsersQuery(b sq.StatementBuilderType, limit int) (string, []any, error) {
	return b.Select("user_id").
		From("user_characters").
		Where(sq.Eq{"active": true}).
		GroupBy("user_id").
		Having("SUM(CASE WHEN main THEN 1 ELSE 0 END) <> 1").
		OrderBy("user_id").
		Limit(uint64(limit)).
		ToSql()
}

func buildSelectCharacterLogsQuery(b sq.StatementBuilderType, characterRefs []int64) (string, []any, error) {
	return b.Select(characterLogColumns...).
		From("character_logs").
		Where(sq.Eq{"character_id": characterRefs}).
		ToSql()
}

func buildSelectActiveUserAPIsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userAPIColumns...).
		From("user_apis").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"active": true}).
		OrderBy("id").
		ToSql()
}

func buildSelectActiveUserMapsQuery(b sq.StatementBuilderType, userID int64, limit int) (string, []any, error) {
	return b.Select(mapColumns...).
		From("maps m").
		Join("user_maps um ON um.map_id = m.id").
		Where(sq.Eq{"um.user_id": userID}).
		Where(sq.Eq{"m.active": true}).
		OrderBy("m.id").
		Limit(uint64(limit)).
		ToSql()
}
