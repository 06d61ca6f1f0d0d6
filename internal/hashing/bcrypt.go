package hashing

import "golang.org/x/crypto/bcrypt"

type Bcrypt struct {
	cost  int
	dummy []byte
}

func NewBcrypt(cost int) *Bcrypt {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword([]byte("no-such-account"), cost)
	if err != nil {
		panic(err)
	}
	return &Bcrypt{cost: cost, dummy: dummy}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	return string(h), err
}

func (b *Bcrypt) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyCompare burns the same hashing work as a real comparison, keeping
// response timing for an unknown account in line with a wrong password.
func (b *Bcrypt) DummyCompare(password string) {
	_ = bcrypt.CompareHashAndPassword(b.dummy, []byte(password))
}
