package usecase

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/catalog-api/internal/domain"
	"github.com/jhoicas/catalog-api/internal/domain/entity"
)

// store catálogo en memoria compartido por los dos repositorios falsos, para que el borrado en cascada se vea en ambos.
type store struct {
	mu         sync.Mutex
	categories map[uint]*entity.Category
	products   map[uint]*entity.Product
	nextCat    uint
	nextProd   uint
}

func newStore() *store {
	return &store{categories: map[uint]*entity.Category{}, products: map[uint]*entity.Product{}, nextCat: 1, nextProd: 1}
}

type fakeCategories struct{ s *store }

type fakeProducts struct{ s *store }

func (f fakeCategories) Create(_ context.Context, c *entity.Category) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c.ID = f.s.nextCat
	f.s.nextCat++
	cp := *c
	f.s.categories[c.ID] = &cp
	return nil
}

func (f fakeCategories) GetByID(_ context.Context, id uint) (*entity.Category, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if c, ok := f.s.categories[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f fakeCategories) Exists(_ context.Context, id uint) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	_, ok := f.s.categories[id]
	return ok, nil
}

func (f fakeCategories) Update(_ context.Context, c *entity.Category) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.s.categories[c.ID] = &cp
	return nil
}

func (f fakeCategories) List(_ context.Context, page domain.PageRequest) (domain.Page[*entity.Category], error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	all := make([]*entity.Category, 0, len(f.s.categories))
	for _, c := range f.s.categories {
		cp := *c
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return window(all, page), nil
}

func (f fakeCategories) Delete(_ context.Context, id uint) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	for pid, p := range f.s.products {
		if p.CategoryID == id {
			delete(f.s.products, pid)
		}
	}
	delete(f.s.categories, id)
	return nil
}

func (f fakeProducts) Create(_ context.Context, p *entity.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	p.ID = f.s.nextProd
	f.s.nextProd++
	cp := *p
	f.s.products[p.ID] = &cp
	return nil
}

func (f fakeProducts) GetByID(_ context.Context, id uint) (*entity.Product, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if p, ok := f.s.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f fakeProducts) Update(_ context.Context, p *entity.Product) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	f.s.products[p.ID] = &cp
	return nil
}

func (f fakeProducts) List(ctx context.Context, page domain.PageRequest) (domain.Page[*entity.Product], error) {
	return f.filter(func(*entity.Product) bool { return true }, page), nil
}

func (f fakeProducts) ListByCategory(_ context.Context, categoryID uint, page domain.PageRequest) (domain.Page[*entity.Product], error) {
	return f.filter(func(p *entity.Product) bool { return p.CategoryID == categoryID }, page), nil
}

func (f fakeProducts) Delete(_ context.Context, id uint) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.s.products, id)
	return nil
}

func (f fakeProducts) filter(keep func(*entity.Product) bool, page domain.PageRequest) domain.Page[*entity.Product] {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	all := make([]*entity.Product, 0, len(f.s.products))
	for _, p := range f.s.products {
		if keep(p) {
			cp := *p
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return window(all, page)
}

func window[T any](all []T, page domain.PageRequest) domain.Page[T] {
	start := page.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + page.Size
	if end > len(all) {
		end = len(all)
	}
	return domain.Page[T]{Items: all[start:end], TotalElements: int64(len(all)), Number: page.Number, Size: page.Size}
}

func newUseCases() (*CategoryUseCase, *ProductUseCase, *store) {
	s := newStore()
	cats, prods := fakeCategories{s}, fakeProducts{s}
	return NewCategoryUseCase(cats, prods), NewProductUseCase(prods, cats), s
}
