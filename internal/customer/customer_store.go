package customer

import (
	"hekto/internal/sanity"
)

// listQuery는 이 앱이 사용하는 유일한 GROQ 프로젝션입니다.
const listQuery = `*[_type == "customer"]{
  name,
  email,
  phone,
  city,
  address1,
  address2,
  items[] {
    name,
    id,
    description,
    price
  }
}`

// Store는 문서 스토어에서 customer 문서를 조회합니다.
type Store struct {
	client *sanity.Client
}

// NewStore는 새 Store를 생성합니다.
func NewStore(client *sanity.Client) *Store {
	return &Store{client: client}
}

// ListCustomers는 저장된 customer 문서 전체를 조회합니다.
// (정렬 보장 없음: 스토어가 주는 순서 그대로 반환합니다)
func (s *Store) ListCustomers() ([]Customer, error) {
	var customers []Customer
	if err := s.client.Query(listQuery, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}
