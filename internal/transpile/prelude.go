package transpile

// prelude is emitted verbatim before any translated function. It
// supplies the fixed-width integer aliases, the user-defined literal
// operators for suffixed integer literals, the bo_range helper used by
// ranged-for lowering, a generic print, and the entry-point shim that
// calls the renamed user main.
const prelude = `#include <cstdint>
#include <cstddef>
#include <array>
#include <span>
#include <iostream>

using u8 = std::uint8_t;
using u16 = std::uint16_t;
using u32 = std::uint32_t;
using u64 = std::uint64_t;
using usize = std::size_t;
using i8 = std::int8_t;
using i16 = std::int16_t;
using i32 = std::int32_t;
using i64 = std::int64_t;
using isize = std::ptrdiff_t;

constexpr u8 operator""_u8(unsigned long long v) { return static_cast<u8>(v); }
constexpr u16 operator""_u16(unsigned long long v) { return static_cast<u16>(v); }
constexpr u32 operator""_u32(unsigned long long v) { return static_cast<u32>(v); }
constexpr u64 operator""_u64(unsigned long long v) { return static_cast<u64>(v); }
constexpr usize operator""_usize(unsigned long long v) { return static_cast<usize>(v); }
constexpr i8 operator""_i8(unsigned long long v) { return static_cast<i8>(v); }
constexpr i16 operator""_i16(unsigned long long v) { return static_cast<i16>(v); }
constexpr i32 operator""_i32(unsigned long long v) { return static_cast<i32>(v); }
constexpr i64 operator""_i64(unsigned long long v) { return static_cast<i64>(v); }
constexpr isize operator""_isize(unsigned long long v) { return static_cast<isize>(v); }

template <typename T, bool Inclusive>
struct bo_range {
    struct iterator {
        T cur;
        T bound() const { return cur; }
        T operator*() const { return cur; }
        iterator &operator++() { ++cur; return *this; }
        bool operator!=(const iterator &other) const {
            if constexpr (Inclusive) {
                return cur <= other.cur;
            } else {
                return cur < other.cur;
            }
        }
    };
    T start;
    T stop;
    iterator begin() const { return iterator{start}; }
    iterator end() const { return iterator{stop}; }
};

template <typename T>
void print(const T &value) {
    std::cout << value;
}

void bo_main();

int main() {
    bo_main();
    return 0;
}

`
