package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			description,
			status,
			author_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:description,
			:status,
			:author_id,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			b.id,
			b.title,
			b.description,
			b.status,
			b.author_id,
			u.name AS author_name,
			b.created_at,
			b.updated_at
		FROM blogs b
		LEFT JOIN users u ON u.id = b.author_id
		WHERE b.id = :id
	`

	// Locks the blog row for the rest of the transaction. The users side of
	// the outer join cannot be locked, hence OF b.
	queryLockBlogByID = `
		SELECT
			b.id,
			b.title,
			b.description,
			b.status,
			b.author_id,
			u.name AS author_name,
			b.created_at,
			b.updated_at
		FROM blogs b
		LEFT JOIN users u ON u.id = b.author_id
		WHERE b.id = :id
		FOR UPDATE OF b
	`

	// Both filters are optional: a NULL parameter disables it.
	queryGetBlogs = `
		SELECT
			b.id,
			b.title,
			b.description,
			b.status,
			b.author_id,
			u.name AS author_name,
			b.created_at,
			b.updated_at
		FROM blogs b
		LEFT JOIN users u ON u.id = b.author_id
		WHERE (CAST(:author_id AS uuid) IS NULL OR b.author_id = CAST(:author_id AS uuid))
		  AND (CAST(:status AS varchar) IS NULL OR b.status = CAST(:status AS varchar))
		ORDER BY b.title ASC, b.id ASC
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			description = :description,
			status = :status,
			author_id = :author_id,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryAddLike = `
		INSERT INTO blog_likes (blog_id, user_id, created_at)
		VALUES (:blog_id, :user_id, NOW())
		ON CONFLICT (blog_id, user_id) DO NOTHING
	`

	queryRemoveLike = `
		DELETE FROM blog_likes
		WHERE blog_id = :blog_id AND user_id = :user_id
	`

	queryGetLikers = `
		SELECT
			bl.blog_id,
			u.id,
			u.name
		FROM blog_likes bl
		JOIN users u ON u.id = bl.user_id
		WHERE bl.blog_id = ANY(CAST(:blog_ids AS uuid[]))
		ORDER BY u.name ASC, u.id ASC
	`
)
