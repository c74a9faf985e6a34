package userRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, name, role, status, created_at, updated_at)
VALUES (:id, :email, :name, :role, :status, :created_at, :updated_at)`

	queryGetByID = `
SELECT id, email, name, role, status, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetAll = `
SELECT id, email, name, role, status, created_at, updated_at
FROM users
ORDER BY name ASC`

	queryGetByStatus = `
SELECT id, email, name, role, status, created_at, updated_at
FROM users
    WHERE status = :status
ORDER BY name ASC`

	queryUpdateUser = `
UPDATE users
SET email = :email,
    name = :name,
    role = :role,
    status = :status,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`

	queryDeleteLikesByUser = `
DELETE FROM blog_likes
WHERE user_id = :user_id`
)
