// Package storetest provides repository doubles for service and handler tests.
package storetest

import (
	"blogapi/internal/api/blog"
	blogRepository "blogapi/internal/api/blog/repository"
	"blogapi/internal/api/user"
	userRepository "blogapi/internal/api/user/repository"
	"blogapi/internal/entity"
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrInjected is a convenient error for FailOn.
var ErrInjected = errors.New("storetest: injected failure")

// Store is an in-memory stand-in for the postgres schema. It enforces the same
// constraints the schema does: unique email, author foreign key with SET NULL on
// user delete, likes cascading with their blog or user, one like per pair.
type Store struct {
	mu       sync.Mutex
	users    map[string]entity.User
	blogs    map[string]entity.Blog
	likes    map[string]map[string]time.Time
	failures map[string]error
}

func New() *Store {
	return &Store{
		users:    make(map[string]entity.User),
		blogs:    make(map[string]entity.Blog),
		likes:    make(map[string]map[string]time.Time),
		failures: make(map[string]error),
	}
}

// FailOn makes the next call of op return err. op is a repository method name
// such as "DeleteUser", or "Begin" for opening a transaction.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) UsersRepository() userRepository.Repository {
	return &usersRepository{store: s}
}

func (s *Store) BlogsRepository() blogRepository.Repository {
	return &blogsRepository{store: s}
}

// LikesOf returns the ids of the users who liked blogID, sorted.
func (s *Store) LikesOf(blogID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.likes[blogID]))
	for userID := range s.likes[blogID] {
		ids = append(ids, userID)
	}
	sort.Strings(ids)
	return ids
}

// LikeCount returns the number of like rows across all blogs.
func (s *Store) LikeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, set := range s.likes {
		n += len(set)
	}
	return n
}

type usersRepository struct {
	store *Store
}

func (r *usersRepository) NewClient(tx bool) (userRepository.Client, error) {
	commit, rollback, err := r.store.begin(tx)
	if err != nil {
		return userRepository.Client{}, err
	}

	return userRepository.Client{
		Users:    r.store,
		Likes:    r.store,
		Commit:   commit,
		Rollback: rollback,
	}, nil
}

type blogsRepository struct {
	store *Store
}

func (r *blogsRepository) NewClient(tx bool) (blogRepository.Client, error) {
	commit, rollback, err := r.store.begin(tx)
	if err != nil {
		return blogRepository.Client{}, err
	}

	return blogRepository.Client{
		Blogs:    r.store,
		Likes:    r.store,
		Commit:   commit,
		Rollback: rollback,
	}, nil
}

type snapshot struct {
	users map[string]entity.User
	blogs map[string]entity.Blog
	likes map[string]map[string]time.Time
}

// begin returns commit and rollback funcs. A transactional client snapshots the
// store and restores it on Rollback unless Commit ran first.
func (s *Store) begin(tx bool) (func() error, func() error, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("Begin"); err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }
	if !tx {
		return noop, noop, nil
	}

	snap := s.snapshot()
	done := false

	commit := func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if done {
			return errors.New("storetest: transaction already closed")
		}
		if err := s.takeFailure("Commit"); err != nil {
			s.restore(snap)
			done = true
			return err
		}
		done = true
		return nil
	}

	rollback := func() error {
		s.mu.Lock()
		defer s.mu.Unlock()
		if done {
			return nil
		}
		s.restore(snap)
		done = true
		return nil
	}

	return commit, rollback, nil
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		users: make(map[string]entity.User, len(s.users)),
		blogs: make(map[string]entity.Blog, len(s.blogs)),
		likes: make(map[string]map[string]time.Time, len(s.likes)),
	}
	for id, u := range s.users {
		snap.users[id] = u
	}
	for id, b := range s.blogs {
		snap.blogs[id] = b
	}
	for blogID, set := range s.likes {
		copied := make(map[string]time.Time, len(set))
		for userID, at := range set {
			copied[userID] = at
		}
		snap.likes[blogID] = copied
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.users = snap.users
	s.blogs = snap.blogs
	s.likes = snap.likes
}

func (s *Store) takeFailure(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

// Users

func (s *Store) CreateUser(_ context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("CreateUser"); err != nil {
		return err
	}
	if s.emailTaken(user.Email, "") {
		return users.ErrEmailAlreadyExists
	}

	s.users[user.ID] = user
	return nil
}

func (s *Store) GetByID(_ context.Context, id string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("GetByID"); err != nil {
		return entity.User{}, err
	}

	user, ok := s.users[id]
	if !ok {
		return entity.User{}, users.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetAll(_ context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("GetAll"); err != nil {
		return nil, err
	}
	return s.sortedUsers(""), nil
}

func (s *Store) GetByStatus(_ context.Context, status entity.UserStatus) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("GetByStatus"); err != nil {
		return nil, err
	}
	return s.sortedUsers(status), nil
}

func (s *Store) UpdateUser(_ context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("UpdateUser"); err != nil {
		return err
	}

	existing, ok := s.users[user.ID]
	if !ok {
		return users.ErrUserNotFound
	}
	if s.emailTaken(user.Email, user.ID) {
		return users.ErrEmailAlreadyExists
	}

	user.CreatedAt = existing.CreatedAt
	s.users[user.ID] = user
	return nil
}

func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("DeleteUser"); err != nil {
		return err
	}
	if _, ok := s.users[id]; !ok {
		return users.ErrUserNotFound
	}

	delete(s.users, id)
	for blogID, blog := range s.blogs {
		if blog.IsAuthoredBy(id) {
			blog.AuthorID = nil
			s.blogs[blogID] = blog
		}
	}
	for _, set := range s.likes {
		delete(set, id)
	}
	return nil
}

func (s *Store) DeleteLikesByUser(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("DeleteLikesByUser"); err != nil {
		return 0, err
	}

	var removed int64
	for _, set := range s.likes {
		if _, ok := set[userID]; ok {
			delete(set, userID)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) emailTaken(email, exceptID string) bool {
	for id, u := range s.users {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func (s *Store) sortedUsers(status entity.UserStatus) []entity.User {
	list := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		if status != "" && u.Status != status {
			continue
		}
		list = append(list, u)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list
}

// Blogs

func (s *Store) CreateBlog(_ context.Context, blog entity.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("CreateBlog"); err != nil {
		return err
	}
	if blog.AuthorID != nil {
		if _, ok := s.users[*blog.AuthorID]; !ok {
			return blogs.ErrAuthorNotFound
		}
	}

	blog.AuthorName = nil
	blog.LikedBy = nil
	s.blogs[blog.ID] = blog
	return nil
}

func (s *Store) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("GetBlogByID"); err != nil {
		return entity.Blog{}, err
	}

	blog, ok := s.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return s.withAuthorName(blog), nil
}

// LockBlog is GetBlogByID; the store mutex already serializes every call.
func (s *Store) LockBlog(_ context.Context, id string) (entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("LockBlog"); err != nil {
		return entity.Blog{}, err
	}

	blog, ok := s.blogs[id]
	if !ok {
		return entity.Blog{}, blogs.ErrBlogNotFound
	}
	return s.withAuthorName(blog), nil
}

func (s *Store) GetBlogs(_ context.Context, filter blogs.BlogFilter) ([]entity.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("GetBlogs"); err != nil {
		return nil, err
	}

	list := make([]entity.Blog, 0, len(s.blogs))
	for _, blog := range s.blogs {
		if filter.Matches(blog) {
			list = append(list, s.withAuthorName(blog))
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Title != list[j].Title {
			return list[i].Title < list[j].Title
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (s *Store) UpdateBlog(_ context.Context, blog entity.Blog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("UpdateBlog"); err != nil {
		return err
	}
	if blog.AuthorID != nil {
		if _, ok := s.users[*blog.AuthorID]; !ok {
			return blogs.ErrAuthorNotFound
		}
	}

	existing, ok := s.blogs[blog.ID]
	if !ok {
		return blogs.ErrBlogNotFound
	}

	blog.CreatedAt = existing.CreatedAt
	blog.AuthorName = nil
	blog.LikedBy = nil
	s.blogs[blog.ID] = blog
	return nil
}

func (s *Store) DeleteBlog(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("DeleteBlog"); err != nil {
		return err
	}
	if _, ok := s.blogs[id]; !ok {
		return blogs.ErrBlogNotFound
	}

	delete(s.blogs, id)
	delete(s.likes, id)
	return nil
}

func (s *Store) withAuthorName(blog entity.Blog) entity.Blog {
	blog.AuthorName = nil
	if blog.AuthorID != nil {
		if author, ok := s.users[*blog.AuthorID]; ok {
			name := author.Name
			blog.AuthorName = &name
		}
	}
	return blog
}

// Likes

func (s *Store) AddLike(_ context.Context, blogID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("AddLike"); err != nil {
		return err
	}
	if _, ok := s.blogs[blogID]; !ok {
		return blogs.ErrBlogNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return blogs.ErrUserNotFound
	}

	// ids may alias fiber's request buffers
	set, ok := s.likes[blogID]
	if !ok {
		set = make(map[string]time.Time)
		s.likes[strings.Clone(blogID)] = set
	}
	if _, liked := set[userID]; !liked {
		set[strings.Clone(userID)] = time.Now().UTC()
	}
	return nil
}

func (s *Store) RemoveLike(_ context.Context, blogID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("RemoveLike"); err != nil {
		return err
	}

	delete(s.likes[blogID], userID)
	return nil
}

func (s *Store) GetLikers(_ context.Context, blogIDs []string) (map[string][]entity.Liker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.takeFailure("GetLikers"); err != nil {
		return nil, err
	}

	likers := make(map[string][]entity.Liker, len(blogIDs))
	for _, blogID := range blogIDs {
		for userID := range s.likes[blogID] {
			u, ok := s.users[userID]
			if !ok {
				continue
			}
			likers[blogID] = append(likers[blogID], entity.Liker{ID: u.ID, Name: u.Name})
		}

		list := likers[blogID]
		sort.Slice(list, func(i, j int) bool {
			if list[i].Name != list[j].Name {
				return list[i].Name < list[j].Name
			}
			return list[i].ID < list[j].ID
		})
	}
	return likers, nil
}
