package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"reptileshop/internal/domain/entity"
	"reptileshop/pkg/errors"
	"reptileshop/pkg/mailer"
)

// In-memory repository fakes. Mutate is serialized through the store mutex,
// matching the aggregate-scoped transaction contract of the real adapters.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	return &c
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return copyUser(u), nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByResetToken(ctx context.Context, token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken == token && token != "" {
			return copyUser(u), nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, copyUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), int64(len(r.users)), nil
}

func (r *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func copyProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Images = append([]string(nil), p.Images...)
	c.Reviews = append([]entity.Review(nil), p.Reviews...)
	return &c
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = copyProduct(product)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return copyProduct(p), nil
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Slug == slug {
			return copyProduct(p), nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = copyProduct(product)
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return errors.NotFound("Product", nil)
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if category, ok := filter["category"]; ok && p.Category != category {
			continue
		}
		if country, ok := filter["country"]; ok && p.Country != country {
			continue
		}
		out = append(out, copyProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	return paginate(out, limit, offset), total, nil
}

func (r *fakeProductRepo) Mutate(ctx context.Context, id string, fn func(*entity.Product) (bool, error)) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	work := copyProduct(p)
	write, err := fn(work)
	if err != nil {
		return nil, err
	}
	if write {
		work.UpdatedAt = time.Now()
		r.products[id] = copyProduct(work)
	}
	return work, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func copyOrder(o *entity.Order) *entity.Order {
	c := *o
	c.OrderItems = append([]entity.OrderItem(nil), o.OrderItems...)
	return &c
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders[order.ID] = copyOrder(order)
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return copyOrder(o), nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id]; !ok {
		return errors.NotFound("Order", nil)
	}
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, copyOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	return paginate(out, limit, offset), total, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) SetPaid(ctx context.Context, id string, result *entity.PaymentResult) (*entity.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, false, errors.NotFound("Order", nil)
	}
	if o.IsPaid {
		return copyOrder(o), true, nil
	}
	now := time.Now()
	o.IsPaid = true
	o.PaidAt = &now
	o.PaymentResult = result
	o.UpdatedAt = now
	return copyOrder(o), false, nil
}

func (r *fakeOrderRepo) SetDelivered(ctx context.Context, id string) (*entity.Order, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, false, errors.NotFound("Order", nil)
	}
	if !o.IsPaid {
		return nil, false, errors.BadRequest("Order is not paid", nil)
	}
	if o.IsDelivered {
		return copyOrder(o), true, nil
	}
	now := time.Now()
	o.IsDelivered = true
	o.DeliveredAt = &now
	o.UpdatedAt = now
	return copyOrder(o), false, nil
}

func (r *fakeOrderRepo) Summary(ctx context.Context) (*entity.OrderSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	summary := &entity.OrderSummary{}
	daily := make(map[string]*entity.DailySales)
	for _, o := range r.orders {
		summary.NumOrders++
		summary.TotalSales += o.TotalPrice
		date := o.CreatedAt.Format("2006-01-02")
		d, ok := daily[date]
		if !ok {
			d = &entity.DailySales{Date: date}
			daily[date] = d
		}
		d.Orders++
		d.Sales += o.TotalPrice
	}
	for _, d := range daily {
		summary.Daily = append(summary.Daily, *d)
	}
	sort.Slice(summary.Daily, func(i, j int) bool { return summary.Daily[i].Date < summary.Daily[j].Date })
	return summary, nil
}

type fakeForumRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.ForumPost
}

func newFakeForumRepo() *fakeForumRepo {
	return &fakeForumRepo{posts: make(map[string]*entity.ForumPost)}
}

func copyPost(p *entity.ForumPost) *entity.ForumPost {
	c := *p
	c.Images = append([]string(nil), p.Images...)
	c.Comments = append([]entity.Comment(nil), p.Comments...)
	c.Likes = append([]string(nil), p.Likes...)
	c.Dislikes = append([]string(nil), p.Dislikes...)
	return &c
}

func (r *fakeForumRepo) Create(ctx context.Context, post *entity.ForumPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	r.posts[post.ID] = copyPost(post)
	return nil
}

func (r *fakeForumRepo) GetByID(ctx context.Context, id string) (*entity.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	return copyPost(p), nil
}

func (r *fakeForumRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return errors.NotFound("Post", nil)
	}
	delete(r.posts, id)
	return nil
}

func (r *fakeForumRepo) List(ctx context.Context, limit, offset int) ([]*entity.ForumPost, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.ForumPost, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, copyPost(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, limit, offset), int64(len(r.posts)), nil
}

func (r *fakeForumRepo) Mutate(ctx context.Context, id string, fn func(*entity.ForumPost) (bool, error)) (*entity.ForumPost, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, errors.NotFound("Post", nil)
	}
	work := copyPost(p)
	write, err := fn(work)
	if err != nil {
		return nil, err
	}
	if write {
		work.UpdatedAt = time.Now()
		r.posts[id] = copyPost(work)
	}
	return work, nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*entity.Cart)}
}

func (r *fakeCartRepo) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	c := *cart
	c.Items = append([]entity.CartItem(nil), cart.Items...)
	return &c, nil
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *cart
	c.Items = append([]entity.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = &c
	return nil
}

func (r *fakeCartRepo) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, userID)
	return nil
}

// fakeNotifier records every job it is handed.
type fakeNotifier struct {
	mu   sync.Mutex
	jobs []mailer.EmailJob
}

func (n *fakeNotifier) Send(ctx context.Context, job mailer.EmailJob) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.jobs = append(n.jobs, job)
	return nil
}

func (n *fakeNotifier) sent() []mailer.EmailJob {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]mailer.EmailJob(nil), n.jobs...)
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
