package customer

import (
	log "github.com/sirupsen/logrus"
)

// lister는 Service가 필요로 하는 조회 동작입니다. (*Store가 구현)
type lister interface {
	ListCustomers() ([]Customer, error)
}

// Service는 customer 조회의 비즈니스 로직을 담당합니다.
type Service struct {
	store lister
}

// NewService는 Store를 받아 새 Service를 생성합니다.
func NewService(store lister) *Service {
	return &Service{store: store}
}

// FetchCustomers는 customer 문서 전체를 조회합니다.
// 실패 시 에러를 전파하지 않고 빈 목록을 반환합니다. (fail-open)
// 조회가 깨져도 대시보드는 0건/빈 목록으로 계속 렌더링됩니다.
func (s *Service) FetchCustomers() []Customer {
	customers, err := s.store.ListCustomers()
	if err != nil {
		log.Errorf("customer 조회 실패 (빈 목록으로 대체): %v", err)
		return []Customer{}
	}
	if customers == nil {
		return []Customer{}
	}
	return customers
}
